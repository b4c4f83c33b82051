package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/app"
	"go-leave/internal/leavebalance"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRollover struct {
	years []int
	err   error
}

func (f *fakeRollover) RolloverYear(ctx context.Context, year int) (leavebalance.RolloverResult, error) {
	f.years = append(f.years, year)
	if f.err != nil {
		return leavebalance.RolloverResult{}, f.err
	}
	return leavebalance.RolloverResult{Year: year, Employees: 2, Initialized: 2}, nil
}

func TestRunRollover(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 1, 1, 0, 5, 0, 0, time.UTC) }

	t.Run("success - uses current year", func(t *testing.T) {
		r := &fakeRollover{}

		res, err := app.RunRollover(context.Background(), r, now, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, []int{2026}, r.years)
		assert.Equal(t, 2, res.Initialized)
	})

	t.Run("negative - service error", func(t *testing.T) {
		r := &fakeRollover{err: errors.New("db down")}

		_, err := app.RunRollover(context.Background(), r, now, zap.NewNop())

		assert.EqualError(t, err, "db down")
	})
}

func TestRolloverSchedule(t *testing.T) {
	sched, err := cron.ParseStandard(app.RolloverSchedule)
	assert.NoError(t, err)

	next := sched.Next(time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 5, 0, 0, time.Local), next)
}

func TestNewScheduler(t *testing.T) {
	c, err := app.NewScheduler(context.Background(), &fakeRollover{}, time.Now, zap.NewNop())

	assert.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
}
