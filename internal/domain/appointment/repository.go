package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrNoLoyaltyCredit is returned when a customer holds no unused credit.
var ErrNoLoyaltyCredit = errors.New("no loyalty credit")

type Repository interface {
	// -------- Transaction --------
	// Transaction runs fn against a repository bound to one store
	// transaction. Returning an error rolls everything back.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Service / staff --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// ListStaff returns bookable staff ordered by id. A nil locationID
	// returns staff of every location.
	ListStaff(
		ctx context.Context,
		locationID *uint,
	) ([]models.User, error)

	// -------- Loyalty --------
	ConsumeLoyaltyCredit(
		ctx context.Context,
		customerID uint,
	) error

	// -------- Appointment --------
	AppointmentExistsAt(
		ctx context.Context,
		barberID uint,
		start time.Time,
	) (bool, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// ListAppointmentsStartingBetween returns appointments with start in
	// [from, to), ordered by start.
	ListAppointmentsStartingBetween(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsOverlapping(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListWorkingHours(
		ctx context.Context,
		barberID uint,
	) ([]models.WorkingHours, error)

	ReplaceWorkingHours(
		ctx context.Context,
		barberID uint,
		days []models.WorkingHours,
	) error

	// -------- Blocked time --------
	ListBlockedIntervalsOverlapping(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.BlockedInterval, error)

	CreateBlockedInterval(
		ctx context.Context,
		b *models.BlockedInterval,
	) error

	GetBlockedInterval(
		ctx context.Context,
		id uint,
	) (*models.BlockedInterval, error)

	DeleteBlockedInterval(
		ctx context.Context,
		id uint,
	) error
}

// SlotCache keeps computed availability lists for a short time.
type SlotCache interface {
	Get(ctx context.Context, barberID, serviceID uint, day time.Time) ([]time.Time, bool, error)
	Set(ctx context.Context, barberID, serviceID uint, day time.Time, slots []time.Time) error
	InvalidateDay(ctx context.Context, barberID uint, day time.Time) error
	InvalidateBarber(ctx context.Context, barberID uint) error
}
