package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type WorkingHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache domain.SlotCache
	log   *zap.Logger
}

func NewWorkingHours(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache domain.SlotCache,
	log *zap.Logger,
) *WorkingHours {
	return &WorkingHours{
		repo:  repo,
		audit: audit,
		cache: cache,
		log:   logger.OrNop(log),
	}
}

func (uc *WorkingHours) List(
	ctx context.Context,
	barberID uint,
) ([]models.WorkingHours, error) {
	return uc.repo.ListWorkingHours(ctx, barberID)
}

// Replace swaps the barber's whole week. Weekdays missing from days become
// days off.
func (uc *WorkingHours) Replace(
	ctx context.Context,
	barberID uint,
	days []models.WorkingHours,
) ([]models.WorkingHours, error) {

	if err := domain.ValidateWeek(days); err != nil {
		return nil, err
	}

	if err := uc.repo.ReplaceWorkingHours(ctx, barberID, days); err != nil {
		return nil, err
	}

	invalidateBarber(ctx, uc.cache, uc.log, barberID)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   audit.ActionWorkingHoursSaved,
		Entity:   "working_hours",
		Metadata: map[string]any{"days": len(days)},
	})

	return uc.repo.ListWorkingHours(ctx, barberID)
}

func invalidateBarber(ctx context.Context, cache domain.SlotCache, log *zap.Logger, barberID uint) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateBarber(ctx, barberID); err != nil {
		log.Warn("availability cache invalidation failed", zap.Uint("barber_id", barberID), zap.Error(err))
	}
}
