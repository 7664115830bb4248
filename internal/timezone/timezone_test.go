package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtClock_LocalizesToVienna(t *testing.T) {
	day, err := ParseDate("2025-01-06")
	require.NoError(t, err)

	start, err := AtClock(day, "09:00")
	require.NoError(t, err)

	// CET is UTC+1 in January
	assert.Equal(t, time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC), start.UTC())
}

func TestAtClock_SummerTime(t *testing.T) {
	day, err := ParseDate("2025-07-07")
	require.NoError(t, err)

	start, err := AtClock(day, "09:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 7, 7, 7, 0, 0, 0, time.UTC), start.UTC())
}

func TestAtClock_RejectsMalformed(t *testing.T) {
	day, _ := ParseDate("2025-01-06")

	for _, hm := range []string{"", "9", "25:00", "09:60", "nine"} {
		_, err := AtClock(day, hm)
		assert.Error(t, err, hm)
	}
}

func TestStartOfDay_FromUTCInstant(t *testing.T) {
	// 23:30 UTC on Jan 5 is already Jan 6 in Vienna
	got := StartOfDay(time.Date(2025, 1, 5, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, 6, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, BusinessTimezone, got.Location().String())
}
