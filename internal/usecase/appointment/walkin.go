package appointment

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// WalkInSearch scans every staff member's remaining time today on the
// walk-in grid.
type WalkInSearch struct {
	repo        domain.Repository
	resolver    *Resolver
	clock       timezone.Clock
	metrics     *metrics.Metrics
	log         *zap.Logger
	concurrency int
}

func NewWalkInSearch(
	repo domain.Repository,
	resolver *Resolver,
	clock timezone.Clock,
	m *metrics.Metrics,
	log *zap.Logger,
	concurrency int,
) *WalkInSearch {
	if clock == nil {
		clock = timezone.SystemClock{}
	}
	if concurrency <= 0 {
		concurrency = defaultScanConcurrency
	}
	return &WalkInSearch{
		repo:        repo,
		resolver:    resolver,
		clock:       clock,
		metrics:     m,
		log:         logger.OrNop(log),
		concurrency: concurrency,
	}
}

// FindPerBarberEarliest returns, for each staff member with time left today,
// their earliest walk-in slot. Barbers come back in ascending id order and
// exactly one entry is flagged IsEarliest when the list is non-empty.
func (s *WalkInSearch) FindPerBarberEarliest(
	ctx context.Context,
	serviceID uint,
) ([]domain.BarberSlot, error) {

	slots, err := s.scan(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	s.metrics.WalkInScan("per_barber", len(slots) > 0)
	return slots, nil
}

// FindGlobalEarliest returns the earliest walk-in slot across all staff.
// Ties go to the lowest barber id.
func (s *WalkInSearch) FindGlobalEarliest(
	ctx context.Context,
	serviceID uint,
) (domain.BarberSlot, bool, error) {

	slots, err := s.scan(ctx, serviceID)
	if err != nil {
		return domain.BarberSlot{}, false, err
	}

	for _, slot := range slots {
		if slot.IsEarliest {
			s.metrics.WalkInScan("global", true)
			return slot, true, nil
		}
	}

	s.metrics.WalkInScan("global", false)
	return domain.BarberSlot{}, false, nil
}

func (s *WalkInSearch) scan(
	ctx context.Context,
	serviceID uint,
) ([]domain.BarberSlot, error) {

	svc, err := s.repo.GetService(ctx, serviceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	if err != nil {
		return nil, err
	}
	if svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	staff, err := s.repo.ListStaff(ctx, nil)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now()
	found := make([]*domain.BarberSlot, len(staff))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, b := range staff {
		i, b := i, b // per-iteration copies (module targets go 1.21)
		g.Go(func() error {
			slots, err := s.resolver.Resolve(gctx, ResolveInput{
				BarberID:    b.ID,
				Date:        today,
				DurationMin: svc.DurationMin,
				Step:        domain.WalkInStep,
			})
			if err != nil {
				s.metrics.ScanExcluded()
				s.log.Warn("excluding barber from walk-in scan",
					zap.Uint("barber_id", b.ID), zap.Error(err))
				return nil
			}
			if len(slots) == 0 {
				return nil
			}
			found[i] = &domain.BarberSlot{
				BarberID:   b.ID,
				BarberName: b.Name,
				Slot:       slots[0],
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.BarberSlot, 0, len(staff))
	for _, f := range found {
		if f != nil {
			out = append(out, *f)
		}
	}

	earliest := -1
	for i := range out {
		if earliest < 0 || out[i].Slot.Before(out[earliest].Slot) {
			earliest = i
		}
	}
	if earliest >= 0 {
		out[earliest].IsEarliest = true
	}

	return out, nil
}
