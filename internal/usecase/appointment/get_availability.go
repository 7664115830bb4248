package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	resolver *Resolver
	clock    timezone.Clock
	cache    domain.SlotCache
	metrics  *metrics.Metrics
	log      *zap.Logger
}

// NewGetAvailability wires the customer slot list. cache may be nil.
func NewGetAvailability(
	repo domain.Repository,
	resolver *Resolver,
	clock timezone.Clock,
	cache domain.SlotCache,
	m *metrics.Metrics,
	log *zap.Logger,
) *GetAvailability {
	if clock == nil {
		clock = timezone.SystemClock{}
	}
	return &GetAvailability{
		repo:     repo,
		resolver: resolver,
		clock:    clock,
		cache:    cache,
		metrics:  m,
		log:      logger.OrNop(log),
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]time.Time, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetUser(ctx, in.BarberID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !models.IsStaffRole(barber.Role)) {
		return nil, httperr.ErrNotFound("barber_not_found")
	}
	if err != nil {
		return nil, err
	}

	day := timezone.StartOfDay(in.Date)

	if uc.cache != nil {
		slots, ok, err := uc.cache.Get(ctx, in.BarberID, in.ServiceID, day)
		if err != nil {
			uc.log.Warn("availability cache read failed", zap.Uint("barber_id", in.BarberID), zap.Error(err))
		} else if ok {
			uc.metrics.Availability(true)
			return dropPast(slots, uc.clock.Now()), nil
		}
	}

	slots, err := uc.resolver.Resolve(ctx, ResolveInput{
		BarberID:    in.BarberID,
		Date:        day,
		DurationMin: svc.DurationMin,
		Step:        domain.CustomerStep,
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.Availability(false)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, in.BarberID, in.ServiceID, day, slots); err != nil {
			uc.log.Warn("availability cache write failed", zap.Uint("barber_id", in.BarberID), zap.Error(err))
		}
	}

	return slots, nil
}

// cached lists may have been computed a few seconds ago
func dropPast(slots []time.Time, now time.Time) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		if !s.Before(now) {
			out = append(out, s)
		}
	}
	return out
}

func invalidateDay(ctx context.Context, cache domain.SlotCache, log *zap.Logger, barberID uint, at time.Time) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateDay(ctx, barberID, at); err != nil {
		log.Warn("availability cache invalidation failed", zap.Uint("barber_id", barberID), zap.Error(err))
	}
}
