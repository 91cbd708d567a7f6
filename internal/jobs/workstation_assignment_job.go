package jobs

import (
	"context"
	"errors"
	"log/slog"

	"laundryops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WorkstationAssignmentJob periodically picks up orders sitting in received
// status and assigns them to the least-loaded inspection workstation.
type WorkstationAssignmentJob struct {
	handler  commands.AssignReceivedOrderCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWorkstationAssignmentJob creates a job that drains the received queue on
// the given six-field cron schedule.
func NewWorkstationAssignmentJob(
	handler commands.AssignReceivedOrderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *WorkstationAssignmentJob {
	return &WorkstationAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "workstation_assignment_job"),
	}
}

// Start schedules the job.
func (j *WorkstationAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewAssignReceivedOrderCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Workstation assignment job misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty received queue is the normal idle state, not a failure.
			if !errors.Is(err, commands.ErrNoReceivedOrdersFound) {
				j.logger.ErrorContext(ctx, "Workstation assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Workstation assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job.
func (j *WorkstationAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Workstation assignment job stopped")
}
