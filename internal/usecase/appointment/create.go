package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Booking sources, used as the metrics label.
const (
	SourceCustomer = "customer"
	SourceWalkIn   = "walkin"
)

// appointments starting sooner than this get no reminder
const lastMinuteWindow = 24 * time.Hour

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID   uint
	CustomerID uint
	ServiceID  uint
	StartTime  time.Time

	// nil falls back to the service's location
	LocationID *uint

	UseLoyaltyCredit bool
	WalkInName       string

	Source string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment is the booking transaction. Every path that writes an
// appointment goes through it.
type CreateAppointment struct {
	repo    domain.Repository
	clock   timezone.Clock
	audit   *audit.Dispatcher
	cache   domain.SlotCache
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	cache domain.SlotCache,
	m *metrics.Metrics,
	log *zap.Logger,
) *CreateAppointment {
	if clock == nil {
		clock = timezone.SystemClock{}
	}
	return &CreateAppointment{
		repo:    repo,
		clock:   clock,
		audit:   audit,
		cache:   cache,
		metrics: m,
		log:     logger.OrNop(log),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	source := in.Source
	if source == "" {
		source = SourceCustomer
	}

	ap, err := uc.execute(ctx, in)
	if err != nil {
		uc.recordFailure(source, in, err)
		return nil, err
	}

	uc.metrics.Booking(source, metrics.OutcomeCreated)
	return ap, nil
}

func (uc *CreateAppointment) execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	now := uc.clock.Now()

	if err := uc.validateStart(in.StartTime); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Service / barber
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	if err != nil {
		return nil, err
	}
	if svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	barber, err := uc.repo.GetUser(ctx, in.BarberID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !models.IsStaffRole(barber.Role)) {
		return nil, httperr.ErrNotFound("barber_not_found")
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Record
	// --------------------------------------------------
	start := in.StartTime.UTC()
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	ap := &models.Appointment{
		BarberID:   in.BarberID,
		CustomerID: in.CustomerID,
		ServiceID:  svc.ID,
		LocationID: in.LocationID,
		StartTime:  start,
		EndTime:    end,
	}
	if ap.LocationID == nil {
		ap.LocationID = svc.LocationID
	}
	if in.WalkInName != "" {
		name := in.WalkInName
		ap.WalkInName = &name
	}
	if start.Sub(now) < lastMinuteWindow {
		sent := now.UTC()
		ap.ReminderSentAt = &sent
	}

	// --------------------------------------------------
	// Credit + exact-start check + insert, all or nothing
	// --------------------------------------------------
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if in.UseLoyaltyCredit {
			if err := tx.ConsumeLoyaltyCredit(ctx, in.CustomerID); err != nil {
				if errors.Is(err, domain.ErrNoLoyaltyCredit) {
					return httperr.ErrBusiness("no_loyalty_credit")
				}
				return err
			}
			ap.IsFree = true
		}

		taken, err := tx.AppointmentExistsAt(ctx, in.BarberID, start)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrConflict("slot_taken")
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// After commit
	// --------------------------------------------------
	invalidateDay(ctx, uc.cache, uc.log, ap.BarberID, ap.StartTime)

	actor := in.CustomerID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"start":     ap.StartTime,
			"is_free":   ap.IsFree,
		},
	})

	uc.log.Info("appointment created",
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("barber_id", ap.BarberID),
		zap.Time("start", ap.StartTime),
	)

	created, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		// committed; hand back what we wrote
		uc.log.Warn("reload after create failed", zap.Uint("appointment_id", ap.ID), zap.Error(err))
		return ap, nil
	}
	return created, nil
}

func (uc *CreateAppointment) validateStart(start time.Time) error {
	if start.IsZero() {
		return httperr.ErrBusiness("missing_start_time")
	}
	if start.Before(uc.clock.Now()) {
		return httperr.ErrBusiness("slot_in_past")
	}
	return nil
}

func (uc *CreateAppointment) recordFailure(source string, in CreateAppointmentInput, err error) {
	switch httperr.KindOf(err) {
	case httperr.KindConflict:
		uc.metrics.Booking(source, metrics.OutcomeConflict)

		actor := in.CustomerID
		uc.audit.Dispatch(audit.Event{
			ActorID: &actor,
			Action:  audit.ActionAppointmentConflict,
			Entity:  "appointment",
			Metadata: map[string]any{
				"barber_id": in.BarberID,
				"start":     in.StartTime.UTC(),
			},
		})
	case httperr.KindValidation, httperr.KindNotFound:
		uc.metrics.Booking(source, metrics.OutcomeRejected)
	default:
		uc.metrics.Booking(source, metrics.OutcomeError)
		uc.log.Error("booking failed",
			zap.Uint("barber_id", in.BarberID),
			zap.Time("start", in.StartTime),
			zap.Error(err),
		)
	}
}
