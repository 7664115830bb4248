package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
)

const (
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentDeleted  = "appointment_deleted"
	ActionAppointmentConflict = "appointment_conflict"
	ActionWorkingHoursSaved   = "working_hours_replaced"
	ActionBlockedTimeCreated  = "blocked_time_created"
	ActionBlockedTimeDeleted  = "blocked_time_deleted"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes audit events off the request path. When the buffer is
// full events are dropped: auditing never fails a booking.
type Dispatcher struct {
	sink   sink
	log    *zap.Logger
	queue  chan Event
	done   chan struct{}
	closer sync.Once
}

func NewDispatcher(l *Logger, log *zap.Logger) *Dispatcher {
	return newDispatcher(l, log, 100)
}

func newDispatcher(s sink, log *zap.Logger, size int) *Dispatcher {
	d := &Dispatcher{
		sink:  s,
		log:   logger.OrNop(log),
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

// Dispatch is a no-op on a nil dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains the queue. No Dispatch calls may happen after Close.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closer.Do(func() {
		close(d.queue)
		<-d.done
	})
}
