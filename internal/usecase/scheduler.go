package usecase

import (
	"context"
	"log/slog"
	"time"

	"LocalNewsDesk/internal/ports"
)

// Scheduler wires the interval driver with the import use case.
type Scheduler struct {
	driver   ports.Scheduler
	importer *Importer
	logger   *slog.Logger
}

// NewScheduler returns a helper to start/stop recurring import runs.
func NewScheduler(driver ports.Scheduler, importer *Importer, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{driver: driver, importer: importer, logger: logger}
}

// Start registers the import job with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.importer == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if _, err := s.importer.Run(ctx); err != nil {
			s.logger.Error("scheduled import failed", "trigger", trigger, "error", err)
		}
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
