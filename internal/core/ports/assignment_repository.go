package ports

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/staff"
)

// AssignmentRepository defines the persistence contract for workstation
// assignments. Records are soft-deleted (active flag) so historical workload
// queries keep their staffing context.
type AssignmentRepository interface {
	// Add persists a new workstation assignment.
	Add(ctx context.Context, aggregate *staff.Assignment) error

	// Update persists changes to an existing assignment (deactivation).
	Update(ctx context.Context, aggregate *staff.Assignment) error

	// Find retrieves the assignment binding the given staff/stage/branch
	// combination, active or not. Used for idempotent creation.
	Find(ctx context.Context, staffID kernel.UUID, stage order.Stage, branchID kernel.UUID) (*staff.Assignment, error)

	// GetActiveForBranchStage retrieves the active assignments for a stage at
	// a branch, in creation order. Creation order fixes the balancer's
	// first-seen tie-break.
	GetActiveForBranchStage(ctx context.Context, branchID kernel.UUID, stage order.Stage) ([]*staff.Assignment, error)
}
