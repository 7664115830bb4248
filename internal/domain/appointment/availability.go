package appointment

import "time"

// Grid steps used by the different booking entry points.
const (
	CustomerStep = 30 * time.Minute
	WalkInStep   = 20 * time.Minute
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

// BarberSlot is one barber's earliest free start, as offered on the
// walk-in screen.
type BarberSlot struct {
	BarberID   uint
	BarberName string
	Slot       time.Time
	IsEarliest bool
}

// FreeSlots filters the grid over [dayStart, dayEnd) down to the starts that
// are not in the past, finish by dayEnd and do not overlap busy.
func FreeSlots(
	dayStart time.Time,
	dayEnd time.Time,
	duration time.Duration,
	step time.Duration,
	now time.Time,
	busy []Interval,
) []time.Time {

	out := []time.Time{}
	for _, slotStart := range GenerateGrid(dayStart, dayEnd, step) {
		slotEnd := slotStart.Add(duration)

		if slotStart.Before(now) {
			continue
		}
		if slotEnd.After(dayEnd) {
			continue
		}
		if Overlaps(slotStart, slotEnd, busy) {
			continue
		}

		out = append(out, slotStart)
	}
	return out
}
