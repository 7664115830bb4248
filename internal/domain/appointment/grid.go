package appointment

import "time"

// GenerateGrid returns the candidate starts dayStart, dayStart+step, ...
// strictly before dayEnd. A non-positive step yields no candidates.
func GenerateGrid(dayStart, dayEnd time.Time, step time.Duration) []time.Time {
	if step <= 0 || !dayStart.Before(dayEnd) {
		return []time.Time{}
	}

	grid := make([]time.Time, 0, int(dayEnd.Sub(dayStart)/step)+1)
	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(step) {
		grid = append(grid, cur)
	}
	return grid
}
