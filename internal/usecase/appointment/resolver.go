package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Resolver computes free time for one barber. It is read-only and safe to
// call concurrently for different barbers.
type Resolver struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewResolver(repo domain.Repository, clock timezone.Clock) *Resolver {
	if clock == nil {
		clock = timezone.SystemClock{}
	}
	return &Resolver{repo: repo, clock: clock}
}

type ResolveInput struct {
	BarberID    uint
	Date        time.Time
	DurationMin int
	Step        time.Duration
}

// Resolve returns the free start instants of the barber on in.Date, in
// chronological order. A barber without a shift that weekday has no
// availability; that is not an error.
func (r *Resolver) Resolve(
	ctx context.Context,
	in ResolveInput,
) ([]time.Time, error) {

	if in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}
	if in.Step <= 0 {
		return nil, fmt.Errorf("resolve: step must be positive, got %s", in.Step)
	}

	day := timezone.StartOfDay(in.Date)

	wh, err := r.repo.GetWorkingHours(ctx, in.BarberID, int(day.Weekday()))
	if errors.Is(err, domain.ErrNotFound) {
		return []time.Time{}, nil
	}
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd, err := domain.DayWindow(wh, day)
	if err != nil {
		return nil, fmt.Errorf("working hours of barber %d: %w", in.BarberID, err)
	}

	booked, err := r.repo.ListAppointmentsStartingBetween(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// full calendar day so blocks starting before the shift (or on an
	// earlier day) are caught
	blocked, err := r.repo.ListBlockedIntervalsOverlapping(ctx, in.BarberID, day, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := append(domain.AppointmentIntervals(booked), domain.BlockedIntervals(blocked)...)
	duration := time.Duration(in.DurationMin) * time.Minute

	return domain.FreeSlots(dayStart, dayEnd, duration, in.Step, r.clock.Now(), busy), nil
}

// IsFree reports whether the barber's shift covers [start, end) and nothing
// booked or blocked overlaps it.
func (r *Resolver) IsFree(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	local := start.In(timezone.Location())

	wh, err := r.repo.GetWorkingHours(ctx, barberID, int(local.Weekday()))
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !domain.Covers(wh, start, end) {
		return false, nil
	}

	aps, err := r.repo.ListAppointmentsOverlapping(ctx, barberID, start, end)
	if err != nil {
		return false, err
	}
	if len(aps) > 0 {
		return false, nil
	}

	blocks, err := r.repo.ListBlockedIntervalsOverlapping(ctx, barberID, start, end)
	if err != nil {
		return false, err
	}
	return len(blocks) == 0, nil
}
