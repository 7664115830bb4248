package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ScheduleAppointmentInput struct {
	CustomerID uint
	ServiceID  uint
	StartTime  time.Time

	// nil means "any barber"; LocationID is then required
	BarberID   *uint
	LocationID *uint

	UseLoyaltyCredit bool
}

// ScheduleAppointment is the customer booking flow: pick a barber when asked
// for "any", confirm the slot is still free, then book.
type ScheduleAppointment struct {
	repo     domain.Repository
	resolver *Resolver
	assign   *AssignAnyBarber
	create   *CreateAppointment
}

func NewScheduleAppointment(
	repo domain.Repository,
	resolver *Resolver,
	assign *AssignAnyBarber,
	create *CreateAppointment,
) *ScheduleAppointment {
	return &ScheduleAppointment{
		repo:     repo,
		resolver: resolver,
		assign:   assign,
		create:   create,
	}
}

func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	in ScheduleAppointmentInput,
) (*models.Appointment, error) {

	if err := uc.create.validateStart(in.StartTime); err != nil {
		return nil, err
	}

	var barberID uint

	if in.BarberID == nil {
		if in.LocationID == nil {
			return nil, httperr.ErrBusiness("location_required")
		}

		id, err := uc.assign.Execute(ctx, AssignAnyBarberInput{
			LocationID: *in.LocationID,
			ServiceID:  in.ServiceID,
			StartTime:  in.StartTime,
		})
		if err != nil {
			return nil, err
		}
		barberID = id
	} else {
		barberID = *in.BarberID

		if err := checkFree(ctx, uc.repo, uc.resolver, barberID, in.ServiceID, in.StartTime); err != nil {
			return nil, err
		}
	}

	return uc.create.Execute(ctx, CreateAppointmentInput{
		BarberID:         barberID,
		CustomerID:       in.CustomerID,
		ServiceID:        in.ServiceID,
		StartTime:        in.StartTime,
		LocationID:       in.LocationID,
		UseLoyaltyCredit: in.UseLoyaltyCredit,
		Source:           SourceCustomer,
	})
}

// checkFree rejects a start whose full service interval is no longer free.
// The booking transaction itself repeats only the exact-start check.
func checkFree(
	ctx context.Context,
	repo domain.Repository,
	resolver *Resolver,
	barberID uint,
	serviceID uint,
	start time.Time,
) error {

	barber, err := repo.GetUser(ctx, barberID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !models.IsStaffRole(barber.Role)) {
		return httperr.ErrNotFound("barber_not_found")
	}
	if err != nil {
		return err
	}

	svc, err := repo.GetService(ctx, serviceID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound("service_not_found")
	}
	if err != nil {
		return err
	}
	if svc.DurationMin <= 0 {
		return httperr.ErrBusiness("invalid_service_duration")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)
	free, err := resolver.IsFree(ctx, barberID, start, end)
	if err != nil {
		return err
	}
	if !free {
		return httperr.ErrConflict("slot_unavailable")
	}
	return nil
}
