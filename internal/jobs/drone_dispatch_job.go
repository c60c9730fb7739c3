// Package jobs provides the scheduled background tasks of the service.
// Jobs are cron-based via github.com/robfig/cron/v3.
package jobs

import (
	"context"
	"errors"
	"log/slog"

	"skybite/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DroneDispatchJob periodically matches the oldest unassigned order with the
// best available drone. It is the automated counterpart of the manual
// assignment endpoints and runs every five seconds.
type DroneDispatchJob struct {
	handler commands.DispatchPendingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDroneDispatchJob creates the dispatch job around the given handler.
func NewDroneDispatchJob(handler commands.DispatchPendingOrderCommandHandler, logger *slog.Logger) *DroneDispatchJob {
	return &DroneDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "drone_dispatch_job"),
	}
}

// Start schedules the dispatch run. An empty queue or a drained fleet are
// normal states and are not logged as errors.
func (j *DroneDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, commands.ErrNoCarrierAvailable) {
				j.logger.ErrorContext(ctx, "Drone dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Drone dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *DroneDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Drone dispatch job stopped")
}
