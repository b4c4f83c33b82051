package app

import (
	"context"
	"time"

	"go-leave/internal/leavebalance"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RolloverSchedule: 00:05 tanggal 1 Januari.
const RolloverSchedule = "5 0 1 1 *"

type YearRollover interface {
	RolloverYear(ctx context.Context, year int) (leavebalance.RolloverResult, error)
}

func NewScheduler(
	ctx context.Context,
	rollover YearRollover,
	now func() time.Time,
	logger *zap.Logger,
) (*cron.Cron, error) {
	log := logger.Named("app.scheduler")
	c := cron.New()

	_, err := c.AddFunc(RolloverSchedule, func() {
		if _, err := RunRollover(ctx, rollover, now, log); err != nil {
			log.Error("yearly leave rollover failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// RunRollover opens balances of the current calendar year for every active employee.
func RunRollover(
	ctx context.Context,
	rollover YearRollover,
	now func() time.Time,
	log *zap.Logger,
) (leavebalance.RolloverResult, error) {
	year := now().Year()
	log.Info("yearly leave rollover started", zap.Int("year", year))

	res, err := rollover.RolloverYear(ctx, year)
	if err != nil {
		return res, err
	}

	log.Info("yearly leave rollover finished",
		zap.Int("year", res.Year),
		zap.Int("employees", res.Employees),
		zap.Int("initialized", res.Initialized),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}
