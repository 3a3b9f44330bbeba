package app

import (
	"context"
	"time"

	"go-magang/internal/config"
	"go-magang/internal/reminder"

	"go.uber.org/zap"
)

// RunReminder sends one round of reminders. kind is clock_in, clock_out or
// empty to pick by the current time.
func RunReminder(cfg config.Config, kind string) (reminder.Result, error) {
	logger := zap.L().Named("app.reminder")

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return reminder.Result{}, err
	}
	defer sqlDB.Close()

	schedule, err := reminder.ScheduleFromConfig(cfg.Reminder)
	if err != nil {
		return reminder.Result{}, err
	}

	notifier, err := buildNotifier(cfg, gormDB, nil, logger)
	if err != nil {
		return reminder.Result{}, err
	}

	svc := reminder.NewService(reminder.NewRepository(gormDB), notifier, schedule, cfg.Location(), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	return svc.Run(ctx, kind, time.Now())
}
