package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// DayWindow localizes a weekly shift onto the calendar day of date.
func DayWindow(wh *models.WorkingHours, date time.Time) (time.Time, time.Time, error) {
	start, err := timezone.AtClock(date, wh.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := timezone.AtClock(date, wh.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Covers reports whether [start, end) lies fully inside the shift on
// start's calendar day.
func Covers(wh *models.WorkingHours, start, end time.Time) bool {
	if wh == nil {
		return false
	}
	local := start.In(timezone.Location())
	if int(local.Weekday()) != wh.Weekday {
		return false
	}

	dayStart, dayEnd, err := DayWindow(wh, local)
	if err != nil {
		return false
	}
	return !start.Before(dayStart) && !end.After(dayEnd)
}

// ValidateWeek checks a full replacement set of shifts for one barber.
func ValidateWeek(days []models.WorkingHours) error {
	seen := make(map[int]bool, len(days))

	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return httperr.ErrBusiness("invalid_weekday")
		}
		if seen[d.Weekday] {
			return httperr.ErrBusiness("duplicate_weekday")
		}
		seen[d.Weekday] = true

		sh, sm, err := timezone.ParseClock(d.StartTime)
		if err != nil {
			return httperr.ErrBusiness("invalid_start_time")
		}
		eh, em, err := timezone.ParseClock(d.EndTime)
		if err != nil {
			return httperr.ErrBusiness("invalid_end_time")
		}
		if sh*60+sm >= eh*60+em {
			return httperr.ErrBusiness("start_after_end")
		}
	}
	return nil
}
