package timezone

import (
	"fmt"
	"sync"
	"time"

	// embedded zoneinfo so slim containers resolve Europe/Vienna
	_ "time/tzdata"
)

const BusinessTimezone = "Europe/Vienna"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	loadOnce sync.Once
	location *time.Location
)

// Location returns the single business timezone every wall-clock value is
// interpreted in.
func Location() *time.Location {
	loadOnce.Do(func() {
		loc, err := time.LoadLocation(BusinessTimezone)
		if err != nil {
			panic(fmt.Sprintf("timezone: load %s: %v", BusinessTimezone, err))
		}
		location = loc
	})
	return location
}

// Clock is the source of "now" for anything that filters out the past.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().In(Location())
}

func Now() time.Time {
	return SystemClock{}.Now()
}

// ParseDate parses "YYYY-MM-DD" as midnight in the business timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Location())
}

// StartOfDay returns local midnight of the calendar day t falls on.
func StartOfDay(t time.Time) time.Time {
	t = t.In(Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location())
}

// ParseClock validates an "HH:MM" wall-clock value.
func ParseClock(hm string) (hour, minute int, err error) {
	t, err := time.Parse(ClockLayout, hm)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q: %w", hm, err)
	}
	return t.Hour(), t.Minute(), nil
}

// AtClock localizes an "HH:MM" value onto the calendar day of date.
func AtClock(date time.Time, hm string) (time.Time, error) {
	h, m, err := ParseClock(hm)
	if err != nil {
		return time.Time{}, err
	}
	d := date.In(Location())
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, Location()), nil
}
