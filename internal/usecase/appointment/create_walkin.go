package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CreateWalkInInput struct {
	// account entering the walk-in (front desk or kiosk); recorded as the
	// customer of record, the walk-in is identified by Name when given
	CustomerID uint
	Name       string
	ServiceID  uint

	// both nil: take the global earliest slot today
	BarberID  *uint
	StartTime *time.Time
}

type CreateWalkIn struct {
	repo     domain.Repository
	resolver *Resolver
	search   *WalkInSearch
	create   *CreateAppointment
	clock    timezone.Clock
}

func NewCreateWalkIn(
	repo domain.Repository,
	resolver *Resolver,
	search *WalkInSearch,
	create *CreateAppointment,
	clock timezone.Clock,
) *CreateWalkIn {
	if clock == nil {
		clock = timezone.SystemClock{}
	}
	return &CreateWalkIn{
		repo:     repo,
		resolver: resolver,
		search:   search,
		create:   create,
		clock:    clock,
	}
}

func (uc *CreateWalkIn) Execute(
	ctx context.Context,
	in CreateWalkInInput,
) (*models.Appointment, error) {

	name := strings.TrimSpace(in.Name)

	var (
		barberID uint
		start    time.Time
	)

	switch {
	case in.BarberID == nil && in.StartTime == nil:
		best, ok, err := uc.search.FindGlobalEarliest(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrNoCandidate("no_walkin_slot")
		}
		barberID, start = best.BarberID, best.Slot

	case in.BarberID != nil && in.StartTime == nil:
		slots, err := uc.search.FindPerBarberEarliest(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			if s.BarberID == *in.BarberID {
				barberID, start = s.BarberID, s.Slot
				break
			}
		}
		if barberID == 0 {
			return nil, httperr.ErrNoCandidate("no_walkin_slot")
		}

	case in.BarberID == nil:
		return nil, httperr.ErrBusiness("barber_id_required")

	default:
		barberID, start = *in.BarberID, *in.StartTime

		today := timezone.StartOfDay(uc.clock.Now())
		if !timezone.StartOfDay(start).Equal(today) {
			return nil, httperr.ErrBusiness("walkin_not_today")
		}
		if err := checkFree(ctx, uc.repo, uc.resolver, barberID, in.ServiceID, start); err != nil {
			return nil, err
		}
	}

	return uc.create.Execute(ctx, CreateAppointmentInput{
		BarberID:   barberID,
		CustomerID: in.CustomerID,
		ServiceID:  in.ServiceID,
		StartTime:  start,
		WalkInName: name,
		Source:     SourceWalkIn,
	})
}
