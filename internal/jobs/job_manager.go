package jobs

import (
	"fmt"
	"log/slog"

	"laundryops/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	workstationAssignmentJob *WorkstationAssignmentJob
}

// NewJobManager creates a job manager with all background jobs wired up.
// schedule is the six-field cron expression for the assignment sweep.
func NewJobManager(
	assignReceivedOrderHandler commands.AssignReceivedOrderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workstationAssignmentJob: NewWorkstationAssignmentJob(assignReceivedOrderHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.workstationAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start workstation assignment job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.workstationAssignmentJob.Stop()
}
