package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testfixtures"
)

type walkInFixture struct {
	env  *testEnv
	a, b *models.User
	svc  *models.Service
}

// Two barbers working Monday 09:00-18:00 with a 20 minute service.
func newWalkInFixture(t *testing.T, now string) *walkInFixture {
	env := newTestEnv(t, now)

	a := testfixtures.Barber(t, env.db, "A", nil)
	b := testfixtures.Barber(t, env.db, "B", nil)
	testfixtures.WorkingHours(t, env.db, a.ID, time.Monday, "09:00", "18:00")
	testfixtures.WorkingHours(t, env.db, b.ID, time.Monday, "09:00", "18:00")

	return &walkInFixture{
		env: env,
		a:   a,
		b:   b,
		svc: testfixtures.Service(t, env.db, "Quick cut", 20),
	}
}

func (f *walkInFixture) search() *WalkInSearch {
	return NewWalkInSearch(f.env.repo, f.env.resolver, f.env.clock, nil, nil, 4)
}

func TestFindGlobalEarliest_PicksEarliestAcrossBarbers(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 13:55")
	customer := testfixtures.Customer(t, f.env.db, "Ben")

	// A is busy 14:00-14:20, so A's first slot is 14:20 and B's is 14:00
	testfixtures.Appointment(t, f.env.db, f.a, customer, f.svc, testfixtures.Local(t, "2025-01-06 14:00"))

	best, ok, err := f.search().FindGlobalEarliest(context.Background(), f.svc.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, f.b.ID, best.BarberID)
	assert.Equal(t, "14:00", clocks([]time.Time{best.Slot})[0])
	assert.True(t, best.IsEarliest)
}

func TestFindPerBarberEarliest_FlagsExactlyOne(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 13:55")
	customer := testfixtures.Customer(t, f.env.db, "Ben")
	testfixtures.Appointment(t, f.env.db, f.a, customer, f.svc, testfixtures.Local(t, "2025-01-06 14:00"))

	slots, err := f.search().FindPerBarberEarliest(context.Background(), f.svc.ID)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, f.a.ID, slots[0].BarberID)
	assert.Equal(t, "14:20", clocks([]time.Time{slots[0].Slot})[0])
	assert.False(t, slots[0].IsEarliest)

	assert.Equal(t, f.b.ID, slots[1].BarberID)
	assert.True(t, slots[1].IsEarliest)
}

func TestFindGlobalEarliest_TieGoesToFirstBarber(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 13:55")

	best, ok, err := f.search().FindGlobalEarliest(context.Background(), f.svc.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, f.a.ID, best.BarberID)
}

func TestFindGlobalEarliest_NothingLeftToday(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 17:50")

	_, ok, err := f.search().FindGlobalEarliest(context.Background(), f.svc.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	slots, err := f.search().FindPerBarberEarliest(context.Background(), f.svc.ID)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestWalkInScan_ExcludesFailingBarber(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 13:55")

	broken := testfixtures.Barber(t, f.env.db, "Broken", nil)
	testfixtures.WorkingHours(t, f.env.db, broken.ID, time.Monday, "9am", "18:00")

	slots, err := f.search().FindPerBarberEarliest(context.Background(), f.svc.ID)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.NotEqual(t, broken.ID, s.BarberID)
	}
}

func TestWalkInScan_UnknownService(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 13:55")

	_, _, err := f.search().FindGlobalEarliest(context.Background(), 999)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestCreateWalkIn_BooksGlobalEarliest(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 13:55")
	staff := testfixtures.Customer(t, f.env.db, "Front desk")
	testfixtures.Appointment(t, f.env.db, f.a, staff, f.svc, testfixtures.Local(t, "2025-01-06 14:00"))

	uc := NewCreateWalkIn(f.env.repo, f.env.resolver, f.search(), f.env.booker(), f.env.clock)

	ap, err := uc.Execute(context.Background(), CreateWalkInInput{
		CustomerID: staff.ID,
		Name:       "Walk-in Joe",
		ServiceID:  f.svc.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, f.b.ID, ap.BarberID)
	assert.True(t, ap.StartTime.Equal(testfixtures.Local(t, "2025-01-06 14:00")))
	require.NotNil(t, ap.WalkInName)
	assert.Equal(t, "Walk-in Joe", *ap.WalkInName)
}

func TestCreateWalkIn_NameIsOptional(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 13:55")
	staff := testfixtures.Customer(t, f.env.db, "Front desk")
	uc := NewCreateWalkIn(f.env.repo, f.env.resolver, f.search(), f.env.booker(), f.env.clock)

	ap, err := uc.Execute(context.Background(), CreateWalkInInput{
		CustomerID: staff.ID,
		Name:       "   ",
		ServiceID:  f.svc.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, f.a.ID, ap.BarberID)
	assert.True(t, ap.StartTime.Equal(testfixtures.Local(t, "2025-01-06 14:00")))
	assert.Nil(t, ap.WalkInName)
}

func TestCreateWalkIn_Rejections(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 13:55")
	staff := testfixtures.Customer(t, f.env.db, "Front desk")
	uc := NewCreateWalkIn(f.env.repo, f.env.resolver, f.search(), f.env.booker(), f.env.clock)

	tomorrow := testfixtures.Local(t, "2025-01-07 10:00")
	today := testfixtures.Local(t, "2025-01-06 15:00")

	cases := []struct {
		name string
		in   CreateWalkInInput
		code string
	}{
		{"start without barber", CreateWalkInInput{CustomerID: staff.ID, Name: "Joe", ServiceID: f.svc.ID, StartTime: &today}, "barber_id_required"},
		{"not today", CreateWalkInInput{CustomerID: staff.ID, Name: "Joe", ServiceID: f.svc.ID, BarberID: &f.a.ID, StartTime: &tomorrow}, "walkin_not_today"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code), err.Error())
		})
	}
}

func TestCreateWalkIn_NoSlotIsNoCandidate(t *testing.T) {
	f := newWalkInFixture(t, "2025-01-06 17:50")
	staff := testfixtures.Customer(t, f.env.db, "Front desk")
	uc := NewCreateWalkIn(f.env.repo, f.env.resolver, f.search(), f.env.booker(), f.env.clock)

	_, err := uc.Execute(context.Background(), CreateWalkInInput{
		CustomerID: staff.ID,
		Name:       "Joe",
		ServiceID:  f.svc.ID,
	})
	require.Error(t, err)
	assert.Equal(t, httperr.KindNoCandidate, httperr.KindOf(err))
	assert.True(t, httperr.IsBusiness(err, "no_walkin_slot"))
}
