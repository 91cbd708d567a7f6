// Package staff provides the WorkstationAssignment entity: a durable binding
// of a staff member to a production stage at a branch. Assignments are
// soft-deleted via the active flag so historical workload queries keep their
// staffing context.
package staff

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
)

// Domain errors for workstation assignments.
var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
	// ErrDisplayNameIsRequired is returned when creating an assignment
	// without a staff display name.
	ErrDisplayNameIsRequired = errs.NewValueIsRequiredError("display name")
)

// Assignment binds a staff member to their permanent production stage at a
// branch. Creation is idempotent at the repository level: re-assigning the
// same staff/stage/branch combination yields the existing record.
type Assignment struct {
	// id is the unique identifier of the assignment record
	id kernel.UUID

	// staffID identifies the staff member
	staffID kernel.UUID

	// displayName is the staff member's display name for dashboards
	displayName string

	// stage is the permanent production stage
	stage order.Stage

	// branchID is the branch where the staff member works
	branchID kernel.UUID

	// active is cleared on deactivation; records are never deleted
	active bool

	// createdBy / createdAt record who created the binding and when
	createdBy kernel.UUID
	createdAt time.Time

	// isConstructed ensures the assignment was created via a constructor
	isConstructed bool
}

// NewAssignment creates an active workstation assignment.
func NewAssignment(
	id kernel.UUID,
	staffID kernel.UUID,
	displayName string,
	stage order.Stage,
	branchID kernel.UUID,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		staffID.Validate(),
		stage.Validate(),
		branchID.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}
	if displayName == "" {
		return nil, ErrDisplayNameIsRequired
	}

	return &Assignment{
		id:            id,
		staffID:       staffID,
		displayName:   displayName,
		stage:         stage,
		branchID:      branchID,
		active:        true,
		createdBy:     createdBy,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an assignment from persistence, including
// deactivated records.
func RestoreAssignment(
	id kernel.UUID,
	staffID kernel.UUID,
	displayName string,
	stage order.Stage,
	branchID kernel.UUID,
	active bool,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Assignment, error) {
	a, err := NewAssignment(id, staffID, displayName, stage, branchID, createdBy, createdAt)
	if err != nil {
		return nil, err
	}
	a.active = active
	return a, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment record's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// StaffID returns the staff member bound by this assignment.
func (a *Assignment) StaffID() kernel.UUID {
	return a.staffID
}

// DisplayName returns the staff member's display name.
func (a *Assignment) DisplayName() string {
	return a.displayName
}

// Stage returns the permanent production stage of the assignment.
func (a *Assignment) Stage() order.Stage {
	return a.stage
}

// BranchID returns the branch where the staff member works.
func (a *Assignment) BranchID() kernel.UUID {
	return a.branchID
}

// Active reports whether the assignment is currently in effect.
func (a *Assignment) Active() bool {
	return a.active
}

// CreatedBy returns the manager who created the assignment.
func (a *Assignment) CreatedBy() kernel.UUID {
	return a.createdBy
}

// CreatedAt returns when the assignment was created.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// Matches reports whether this record binds the given staff/stage/branch
// combination. Used for idempotent creation.
func (a *Assignment) Matches(staffID kernel.UUID, stage order.Stage, branchID kernel.UUID) bool {
	return a.staffID.IsEqual(staffID) && a.stage == stage && a.branchID.IsEqual(branchID)
}

// Deactivate takes the assignment out of service. The record is kept so
// historical workload queries retain their staffing context. Deactivating an
// inactive assignment is a no-op.
func (a *Assignment) Deactivate() {
	a.active = false
}
