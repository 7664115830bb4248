package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) intersects any of existing.
// Touching ends (10:00-10:30 and 10:30-11:00) do not overlap.
func Overlaps(start, end time.Time, existing []Interval) bool {
	for _, iv := range existing {
		if start.Before(iv.End) && end.After(iv.Start) {
			return true
		}
	}
	return false
}

func AppointmentIntervals(aps []models.Appointment) []Interval {
	out := make([]Interval, 0, len(aps))
	for _, ap := range aps {
		out = append(out, Interval{Start: ap.StartTime, End: ap.EndTime})
	}
	return out
}

func BlockedIntervals(blocks []models.BlockedInterval) []Interval {
	out := make([]Interval, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, Interval{Start: b.StartTime, End: b.EndTime})
	}
	return out
}
