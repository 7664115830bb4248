package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

const defaultScanConcurrency = 8

type AssignAnyBarberInput struct {
	LocationID uint
	ServiceID  uint
	StartTime  time.Time
}

// AssignAnyBarber picks the first staff member at a location, in ascending
// id order, who is free for the whole service.
type AssignAnyBarber struct {
	repo        domain.Repository
	resolver    *Resolver
	metrics     *metrics.Metrics
	log         *zap.Logger
	concurrency int
}

func NewAssignAnyBarber(
	repo domain.Repository,
	resolver *Resolver,
	m *metrics.Metrics,
	log *zap.Logger,
	concurrency int,
) *AssignAnyBarber {
	if concurrency <= 0 {
		concurrency = defaultScanConcurrency
	}
	return &AssignAnyBarber{
		repo:        repo,
		resolver:    resolver,
		metrics:     m,
		log:         logger.OrNop(log),
		concurrency: concurrency,
	}
}

func (uc *AssignAnyBarber) Execute(
	ctx context.Context,
	in AssignAnyBarberInput,
) (uint, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, httperr.ErrNotFound("service_not_found")
	}
	if err != nil {
		return 0, err
	}
	if svc.DurationMin <= 0 {
		return 0, httperr.ErrBusiness("invalid_service_duration")
	}

	staff, err := uc.repo.ListStaff(ctx, &in.LocationID)
	if err != nil {
		return 0, err
	}

	end := in.StartTime.Add(time.Duration(svc.DurationMin) * time.Minute)
	free := make([]bool, len(staff))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, b := range staff {
		i, b := i, b // per-iteration copies (module targets go 1.21)
		g.Go(func() error {
			ok, err := uc.resolver.IsFree(gctx, b.ID, in.StartTime, end)
			if err != nil {
				uc.metrics.ScanExcluded()
				uc.log.Warn("excluding barber from assignment",
					zap.Uint("barber_id", b.ID), zap.Error(err))
				return nil
			}
			free[i] = ok
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	for i, b := range staff {
		if free[i] {
			return b.ID, nil
		}
	}

	uc.metrics.Booking(SourceCustomer, metrics.OutcomeNoCandidate)
	return 0, httperr.ErrNoCandidate("no_staff_available")
}
