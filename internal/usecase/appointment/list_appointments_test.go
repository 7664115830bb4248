package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/testfixtures"
)

func TestListAppointments(t *testing.T) {
	env := newTestEnv(t, "2025-01-06 07:00")
	ctx := context.Background()

	barber := testfixtures.Barber(t, env.db, "Anna", nil)
	customer := testfixtures.Customer(t, env.db, "Ben")
	svc := testfixtures.Service(t, env.db, "Cut", 30)

	testfixtures.Appointment(t, env.db, barber, customer, svc, testfixtures.Local(t, "2025-01-06 14:00"))
	testfixtures.Appointment(t, env.db, barber, customer, svc, testfixtures.Local(t, "2025-01-06 09:00"))
	// 00:30 local is still the previous day in UTC
	testfixtures.Appointment(t, env.db, barber, customer, svc, testfixtures.Local(t, "2025-01-07 00:30"))
	testfixtures.Appointment(t, env.db, barber, customer, svc, testfixtures.Local(t, "2025-02-03 09:00"))

	uc := NewListAppointments(env.repo)

	day, err := uc.ByDate(ctx, barber.ID, testfixtures.Local(t, "2025-01-06 00:00"))
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, 9, day[0].StartTime.Hour())
	assert.Equal(t, "Ben", day[0].CustomerName)
	assert.Equal(t, "Cut", day[0].ServiceName)

	month, err := uc.ByMonth(ctx, barber.ID, 2025, 1)
	require.NoError(t, err)
	assert.Len(t, month, 3)

	_, err = uc.ByMonth(ctx, barber.ID, 2025, 13)
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))
}
