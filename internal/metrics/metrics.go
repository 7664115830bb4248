package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Booking outcomes.
const (
	OutcomeCreated     = "created"
	OutcomeConflict    = "conflict"
	OutcomeRejected    = "rejected"
	OutcomeNoCandidate = "no_candidate"
	OutcomeError       = "error"
)

type Metrics struct {
	bookings      *prometheus.CounterVec
	availability  *prometheus.CounterVec
	walkInScans   *prometheus.CounterVec
	scanExcluded  prometheus.Counter
	httpDurations *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "bookings_total",
			Help:      "Booking attempts by entry point and outcome.",
		}, []string{"source", "outcome"}),
		availability: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "availability_requests_total",
			Help:      "Availability lookups by cache result.",
		}, []string{"cache"}),
		walkInScans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "walkin_scans_total",
			Help:      "Walk-in slot scans by mode and whether a slot was found.",
		}, []string{"mode", "found"}),
		scanExcluded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "scan_excluded_barbers_total",
			Help:      "Barbers dropped from a multi-barber scan because their lookup failed.",
		}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salon",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.bookings, m.availability, m.walkInScans, m.scanExcluded, m.httpDurations)
	return m
}

// All methods are no-ops on a nil *Metrics.

func (m *Metrics) Booking(source, outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) Availability(cacheHit bool) {
	if m == nil {
		return
	}
	label := "miss"
	if cacheHit {
		label = "hit"
	}
	m.availability.WithLabelValues(label).Inc()
}

func (m *Metrics) WalkInScan(mode string, found bool) {
	if m == nil {
		return
	}
	label := "false"
	if found {
		label = "true"
	}
	m.walkInScans.WithLabelValues(mode, label).Inc()
}

func (m *Metrics) ScanExcluded() {
	if m == nil {
		return
	}
	m.scanExcluded.Inc()
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpDurations.WithLabelValues(method, route, status).Observe(seconds)
}
