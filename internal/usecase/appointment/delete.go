package appointment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache domain.SlotCache
	log   *zap.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache domain.SlotCache,
	log *zap.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
		log:   logger.OrNop(log),
	}
}

type DeleteAppointmentInput struct {
	ActorID       uint
	ActorRole     string
	AppointmentID uint
}

// canDelete: customers their own bookings, barbers the ones on their chair,
// head barbers and admins anything.
func canDelete(ap *models.Appointment, actorID uint, role string) bool {
	switch role {
	case models.RoleHeadBarber, models.RoleAdmin:
		return true
	case models.RoleBarber:
		return ap.BarberID == actorID || ap.CustomerID == actorID
	default:
		return ap.CustomerID == actorID
	}
}

// Execute removes the appointment, freeing its slot immediately.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	in DeleteAppointmentInput,
) error {

	appointmentID := in.AppointmentID
	actorID := in.ActorID

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !canDelete(ap, actorID, in.ActorRole)) {
		return httperr.ErrNotFound("appointment_not_found")
	}
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrNotFound("appointment_not_found")
		}
		return err
	}

	invalidateDay(ctx, uc.cache, uc.log, ap.BarberID, ap.StartTime)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"start":     ap.StartTime,
		},
	})

	return nil
}
