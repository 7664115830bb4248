package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const availabilityPrefix = "availability:"

// AvailabilityCache stores customer availability lists per
// barber/service/day. Entries are short lived and dropped for the whole day
// whenever the barber's bookings or blocks change.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func dayKey(barberID uint, day time.Time) string {
	return fmt.Sprintf("%s%d:%s", availabilityPrefix, barberID, day.In(timezone.Location()).Format(timezone.DateLayout))
}

func entryKey(barberID, serviceID uint, day time.Time) string {
	return fmt.Sprintf("%s:%d", dayKey(barberID, day), serviceID)
}

func (c *AvailabilityCache) Get(ctx context.Context, barberID, serviceID uint, day time.Time) ([]time.Time, bool, error) {
	data, err := c.client.Get(ctx, entryKey(barberID, serviceID, day)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var slots []time.Time
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false, err
	}
	return slots, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, barberID, serviceID uint, day time.Time, slots []time.Time) error {
	b, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, entryKey(barberID, serviceID, day), b, c.ttl).Err()
}

func (c *AvailabilityCache) InvalidateDay(ctx context.Context, barberID uint, day time.Time) error {
	return c.deleteMatching(ctx, dayKey(barberID, day)+":*")
}

func (c *AvailabilityCache) InvalidateBarber(ctx context.Context, barberID uint) error {
	return c.deleteMatching(ctx, fmt.Sprintf("%s%d:*", availabilityPrefix, barberID))
}

func (c *AvailabilityCache) deleteMatching(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

var _ domain.SlotCache = (*AvailabilityCache)(nil)
