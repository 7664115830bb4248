package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/testfixtures"
)

func TestResolve_ExcludesBookedStartKeepsNeighbours(t *testing.T) {
	env := newTestEnv(t, "2025-01-06 07:00")
	ctx := context.Background()

	barber := testfixtures.Barber(t, env.db, "Anna", nil)
	customer := testfixtures.Customer(t, env.db, "Ben")
	svc := testfixtures.Service(t, env.db, "Cut", 30)
	testfixtures.WorkingHours(t, env.db, barber.ID, time.Monday, "09:00", "18:00")
	testfixtures.Appointment(t, env.db, barber, customer, svc, testfixtures.Local(t, "2025-01-06 10:00"))

	slots, err := env.resolver.Resolve(ctx, ResolveInput{
		BarberID:    barber.ID,
		Date:        testfixtures.Local(t, "2025-01-06 00:00"),
		DurationMin: 30,
		Step:        domain.CustomerStep,
	})
	require.NoError(t, err)

	got := clocks(slots)
	assert.Contains(t, got, "09:30")
	assert.Contains(t, got, "10:30")
	assert.NotContains(t, got, "10:00")
	assert.Equal(t, "09:00", got[0])
	assert.Equal(t, "17:30", got[len(got)-1])
	assert.Len(t, got, 17)
}

func TestResolve_FullDayBlockLeavesNothing(t *testing.T) {
	env := newTestEnv(t, "2025-01-06 07:00")

	barber := testfixtures.Barber(t, env.db, "Anna", nil)
	testfixtures.WorkingHours(t, env.db, barber.ID, time.Monday, "09:00", "18:00")
	testfixtures.Block(t, env.db, barber.ID,
		testfixtures.Local(t, "2025-01-06 00:00"), testfixtures.Local(t, "2025-01-07 00:00"))

	slots, err := env.resolver.Resolve(context.Background(), ResolveInput{
		BarberID:    barber.ID,
		Date:        testfixtures.Local(t, "2025-01-06 00:00"),
		DurationMin: 30,
		Step:        domain.CustomerStep,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolve_PartialBlockIsHalfOpen(t *testing.T) {
	env := newTestEnv(t, "2025-01-06 07:00")

	barber := testfixtures.Barber(t, env.db, "Anna", nil)
	testfixtures.WorkingHours(t, env.db, barber.ID, time.Monday, "09:00", "18:00")
	testfixtures.Block(t, env.db, barber.ID,
		testfixtures.Local(t, "2025-01-06 12:00"), testfixtures.Local(t, "2025-01-06 13:00"))

	slots, err := env.resolver.Resolve(context.Background(), ResolveInput{
		BarberID:    barber.ID,
		Date:        testfixtures.Local(t, "2025-01-06 00:00"),
		DurationMin: 30,
		Step:        domain.CustomerStep,
	})
	require.NoError(t, err)

	got := clocks(slots)
	assert.Contains(t, got, "11:30")
	assert.NotContains(t, got, "12:00")
	assert.NotContains(t, got, "12:30")
	assert.Contains(t, got, "13:00")
}

func TestResolve_NoShiftIsEmptyNotError(t *testing.T) {
	env := newTestEnv(t, "2025-01-06 07:00")

	barber := testfixtures.Barber(t, env.db, "Anna", nil)
	testfixtures.WorkingHours(t, env.db, barber.ID, time.Tuesday, "09:00", "18:00")

	slots, err := env.resolver.Resolve(context.Background(), ResolveInput{
		BarberID:    barber.ID,
		Date:        testfixtures.Local(t, "2025-01-06 00:00"),
		DurationMin: 30,
		Step:        domain.CustomerStep,
	})
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestResolve_MissingDurationIsValidationError(t *testing.T) {
	env := newTestEnv(t, "2025-01-06 07:00")

	barber := testfixtures.Barber(t, env.db, "Anna", nil)
	testfixtures.WorkingHours(t, env.db, barber.ID, time.Monday, "09:00", "18:00")

	_, err := env.resolver.Resolve(context.Background(), ResolveInput{
		BarberID: barber.ID,
		Date:     testfixtures.Local(t, "2025-01-06 00:00"),
		Step:     domain.CustomerStep,
	})
	require.Error(t, err)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

func TestResolve_DropsPastAndIsIdempotent(t *testing.T) {
	env := newTestEnv(t, "2025-01-06 12:10")

	barber := testfixtures.Barber(t, env.db, "Anna", nil)
	testfixtures.WorkingHours(t, env.db, barber.ID, time.Monday, "09:00", "18:00")

	in := ResolveInput{
		BarberID:    barber.ID,
		Date:        testfixtures.Local(t, "2025-01-06 00:00"),
		DurationMin: 30,
		Step:        domain.CustomerStep,
	}

	first, err := env.resolver.Resolve(context.Background(), in)
	require.NoError(t, err)
	second, err := env.resolver.Resolve(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "12:30", clocks(first)[0])
	assert.Equal(t, clocks(first), clocks(second))
}

func TestIsFree(t *testing.T) {
	env := newTestEnv(t, "2025-01-06 07:00")
	ctx := context.Background()

	barber := testfixtures.Barber(t, env.db, "Anna", nil)
	customer := testfixtures.Customer(t, env.db, "Ben")
	svc := testfixtures.Service(t, env.db, "Cut", 30)
	testfixtures.WorkingHours(t, env.db, barber.ID, time.Monday, "09:00", "18:00")
	testfixtures.Appointment(t, env.db, barber, customer, svc, testfixtures.Local(t, "2025-01-06 10:00"))

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"free morning", "2025-01-06 09:00", "2025-01-06 09:30", true},
		{"ends where booking starts", "2025-01-06 09:30", "2025-01-06 10:00", true},
		{"overlaps booking", "2025-01-06 09:45", "2025-01-06 10:15", false},
		{"runs past closing", "2025-01-06 17:45", "2025-01-06 18:15", false},
		{"before opening", "2025-01-06 08:30", "2025-01-06 09:00", false},
		{"day off", "2025-01-07 10:00", "2025-01-07 10:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := env.resolver.IsFree(ctx, barber.ID,
				testfixtures.Local(t, tc.start), testfixtures.Local(t, tc.end))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
