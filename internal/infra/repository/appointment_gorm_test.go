package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testfixtures"
)

func TestCreateAppointment_UniqueBarberStart(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	barber := testfixtures.Barber(t, db, "Anna", nil)
	customer := testfixtures.Customer(t, db, "Ben")
	svc := testfixtures.Service(t, db, "Cut", 30)
	start := testfixtures.Local(t, "2025-01-06 10:00")

	first := &models.Appointment{
		BarberID: barber.ID, CustomerID: customer.ID, ServiceID: svc.ID,
		StartTime: start, EndTime: start.Add(30 * time.Minute),
	}
	require.NoError(t, repo.CreateAppointment(ctx, first))

	second := &models.Appointment{
		BarberID: barber.ID, CustomerID: customer.ID, ServiceID: svc.ID,
		StartTime: start, EndTime: start.Add(45 * time.Minute),
	}
	err := repo.CreateAppointment(ctx, second)
	require.Error(t, err)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAppointmentExistsAt_ExactStartOnly(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	barber := testfixtures.Barber(t, db, "Anna", nil)
	customer := testfixtures.Customer(t, db, "Ben")
	svc := testfixtures.Service(t, db, "Cut", 30)
	testfixtures.Appointment(t, db, barber, customer, svc, testfixtures.Local(t, "2025-01-06 10:00"))

	ok, err := repo.AppointmentExistsAt(ctx, barber.ID, testfixtures.Local(t, "2025-01-06 10:00"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AppointmentExistsAt(ctx, barber.ID, testfixtures.Local(t, "2025-01-06 10:15"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAppointmentsOverlapping_HalfOpen(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	barber := testfixtures.Barber(t, db, "Anna", nil)
	customer := testfixtures.Customer(t, db, "Ben")
	svc := testfixtures.Service(t, db, "Cut", 30)
	testfixtures.Appointment(t, db, barber, customer, svc, testfixtures.Local(t, "2025-01-06 10:30"))

	got, err := repo.ListAppointmentsOverlapping(ctx, barber.ID,
		testfixtures.Local(t, "2025-01-06 10:00"), testfixtures.Local(t, "2025-01-06 10:30"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.ListAppointmentsOverlapping(ctx, barber.ID,
		testfixtures.Local(t, "2025-01-06 10:00"), testfixtures.Local(t, "2025-01-06 10:31"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestConsumeLoyaltyCredit(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	customer := testfixtures.CustomerWithCredit(t, db, "Ben", 10)

	require.NoError(t, repo.ConsumeLoyaltyCredit(ctx, customer.ID))

	reloaded, err := repo.GetUser(ctx, customer.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.HasFreeCredit)
	assert.Equal(t, 0, reloaded.LoyaltyStamps)

	assert.ErrorIs(t, repo.ConsumeLoyaltyCredit(ctx, customer.ID), domain.ErrNoLoyaltyCredit)
}

func TestListStaff_FiltersRoleAndLocationInIDOrder(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	downtown := testfixtures.Location(t, db, "Downtown")
	uptown := testfixtures.Location(t, db, "Uptown")

	a := testfixtures.Barber(t, db, "A", downtown)
	testfixtures.Barber(t, db, "B", uptown)
	c := testfixtures.Barber(t, db, "C", downtown)
	testfixtures.Customer(t, db, "not staff")

	staff, err := repo.ListStaff(ctx, &downtown.ID)
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, a.ID, staff[0].ID)
	assert.Equal(t, c.ID, staff[1].ID)

	all, err := repo.ListStaff(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReplaceWorkingHours_DeleteAllThenInsert(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	barber := testfixtures.Barber(t, db, "Anna", nil)
	testfixtures.WorkingHours(t, db, barber.ID, time.Monday, "09:00", "18:00")
	testfixtures.WorkingHours(t, db, barber.ID, time.Tuesday, "09:00", "18:00")

	require.NoError(t, repo.ReplaceWorkingHours(ctx, barber.ID, []models.WorkingHours{
		{Weekday: int(time.Friday), StartTime: "12:00", EndTime: "20:00"},
	}))

	hours, err := repo.ListWorkingHours(ctx, barber.ID)
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, int(time.Friday), hours[0].Weekday)

	_, err = repo.GetWorkingHours(ctx, barber.ID, int(time.Monday))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListBlockedIntervalsOverlapping_MultiDayBlock(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	barber := testfixtures.Barber(t, db, "Anna", nil)
	testfixtures.Block(t, db, barber.ID,
		testfixtures.Local(t, "2025-01-03 18:00"), testfixtures.Local(t, "2025-01-08 00:00"))

	got, err := repo.ListBlockedIntervalsOverlapping(ctx, barber.ID,
		testfixtures.Local(t, "2025-01-06 00:00"), testfixtures.Local(t, "2025-01-06 18:00"))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.ListBlockedIntervalsOverlapping(ctx, barber.ID,
		testfixtures.Local(t, "2025-01-08 00:00"), testfixtures.Local(t, "2025-01-08 18:00"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteAppointment_NotFound(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := NewAppointmentGormRepository(db)

	assert.ErrorIs(t, repo.DeleteAppointment(context.Background(), 999), domain.ErrNotFound)
}
