package appointment

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/testfixtures"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Monday 2025-01-06 is the reference day for every scenario here.

type testEnv struct {
	db       *gorm.DB
	repo     *repository.AppointmentGormRepository
	clock    *testfixtures.Clock
	resolver *Resolver
}

func newTestEnv(t *testing.T, now string) *testEnv {
	t.Helper()

	db := testfixtures.NewSQLiteDB(t)
	repo := repository.NewAppointmentGormRepository(db)
	clock := testfixtures.NewClock(now)

	return &testEnv{
		db:       db,
		repo:     repo,
		clock:    clock,
		resolver: NewResolver(repo, clock),
	}
}

func (e *testEnv) booker() *CreateAppointment {
	return NewCreateAppointment(e.repo, e.clock, nil, nil, nil, nil)
}

func clocks(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.In(timezone.Location()).Format(timezone.ClockLayout))
	}
	return out
}
