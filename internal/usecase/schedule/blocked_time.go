package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CreateBlockedTimeInput struct {
	BarberID  uint
	StartTime time.Time
	EndTime   time.Time
	Reason    string
}

type BlockedTime struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache domain.SlotCache
	log   *zap.Logger
}

func NewBlockedTime(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache domain.SlotCache,
	log *zap.Logger,
) *BlockedTime {
	return &BlockedTime{
		repo:  repo,
		audit: audit,
		cache: cache,
		log:   logger.OrNop(log),
	}
}

// List returns the barber's blocks overlapping [from, to).
func (uc *BlockedTime) List(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.BlockedInterval, error) {

	if !from.Before(to) {
		return nil, httperr.ErrBusiness("invalid_range")
	}
	return uc.repo.ListBlockedIntervalsOverlapping(ctx, barberID, from, to)
}

// Create blocks a span of time. Existing appointments inside it are kept;
// the block only hides free slots.
func (uc *BlockedTime) Create(
	ctx context.Context,
	in CreateBlockedTimeInput,
) (*models.BlockedInterval, error) {

	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, httperr.ErrBusiness("missing_block_range")
	}
	if !in.StartTime.Before(in.EndTime) {
		return nil, httperr.ErrBusiness("start_after_end")
	}

	b := &models.BlockedInterval{
		BarberID:  in.BarberID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Reason:    strings.TrimSpace(in.Reason),
	}
	if err := uc.repo.CreateBlockedInterval(ctx, b); err != nil {
		return nil, err
	}

	invalidateBarber(ctx, uc.cache, uc.log, in.BarberID)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.BarberID,
		Action:   audit.ActionBlockedTimeCreated,
		Entity:   "blocked_interval",
		EntityID: &b.ID,
	})

	return b, nil
}

// Delete removes one of the barber's own blocks.
func (uc *BlockedTime) Delete(
	ctx context.Context,
	barberID uint,
	id uint,
) error {

	b, err := uc.repo.GetBlockedInterval(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && b.BarberID != barberID) {
		return httperr.ErrNotFound("blocked_time_not_found")
	}
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBlockedInterval(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrNotFound("blocked_time_not_found")
		}
		return err
	}

	invalidateBarber(ctx, uc.cache, uc.log, barberID)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   audit.ActionBlockedTimeDeleted,
		Entity:   "blocked_interval",
		EntityID: &id,
	})

	return nil
}
