package jobs

import (
	"context"
	"errors"
	"log/slog"

	"courier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchSchedule runs the dispatcher every five seconds.
const dispatchSchedule = "*/5 * * * * *"

// PackageDispatchJob periodically assigns the oldest pending package to the
// least loaded available driver.
type PackageDispatchJob struct {
	handler commands.DispatchPackageCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPackageDispatchJob creates the auto-dispatch job.
// Uses DispatchPackageCommandHandler to run one dispatch round per tick.
func NewPackageDispatchJob(handler commands.DispatchPackageCommandHandler, logger *slog.Logger) *PackageDispatchJob {
	return &PackageDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "package_dispatch_job"),
	}
}

// Start begins the dispatch job.
func (j *PackageDispatchJob) Start() error {
	_, err := j.cron.AddFunc(dispatchSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPackageCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingPackageFound) && !errors.Is(err, commands.ErrNoAvailableDriversFound) {
				j.logger.ErrorContext(ctx, "Package dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Package dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *PackageDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Package dispatch job stopped")
}
