package testfixtures

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Clock provides a controllable time source for tests.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock returns a clock set to the given wall-clock value in the business
// timezone, e.g. NewClock("2025-01-06 07:00").
func NewClock(local string) *Clock {
	t, err := time.ParseInLocation("2006-01-02 15:04", local, timezone.Location())
	if err != nil {
		panic(err)
	}
	return &Clock{current: t}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.current = c.current.Add(d)
	updated := c.current
	c.mu.Unlock()
	return updated
}
