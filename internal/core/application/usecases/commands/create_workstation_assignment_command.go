package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/staff"
	"laundryops/internal/pkg/guard"
)

var ErrCreateWorkstationAssignmentCommandIsNotConstructed = errors.New(
	"CreateWorkstationAssignmentCommand must be created via NewCreateWorkstationAssignmentCommand constructor",
)

// CreateWorkstationAssignmentCommand registers a staff member as an active
// handler of one processing stage at one branch.
type CreateWorkstationAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	staffID      kernel.UUID
	displayName  string
	stage        order.Stage
	branchID     kernel.UUID
	createdBy    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateWorkstationAssignmentCommand creates a command to register a
// workstation assignment.
func NewCreateWorkstationAssignmentCommand(
	assignmentID kernel.UUID,
	staffID kernel.UUID,
	displayName string,
	stage order.Stage,
	branchID kernel.UUID,
	createdBy kernel.UUID,
) (CreateWorkstationAssignmentCommand, error) {
	cmd := CreateWorkstationAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	var nameErr error
	if displayName == "" {
		nameErr = staff.ErrDisplayNameIsRequired
	}

	if err := errors.Join(
		assignmentID.Validate(),
		staffID.Validate(),
		stage.Validate(),
		branchID.Validate(),
		createdBy.Validate(),
		nameErr,
	); err != nil {
		return CreateWorkstationAssignmentCommand{}, err
	}

	cmd.assignmentID = assignmentID
	cmd.staffID = staffID
	cmd.displayName = displayName
	cmd.stage = stage
	cmd.branchID = branchID
	cmd.createdBy = createdBy
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkstationAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkstationAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the new assignment's identifier.
func (c CreateWorkstationAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// StaffID returns the staff member being registered.
func (c CreateWorkstationAssignmentCommand) StaffID() kernel.UUID {
	return c.staffID
}

// DisplayName returns the staff member's display name.
func (c CreateWorkstationAssignmentCommand) DisplayName() string {
	return c.displayName
}

// Stage returns the stage the staff member will handle.
func (c CreateWorkstationAssignmentCommand) Stage() order.Stage {
	return c.stage
}

// BranchID returns the branch the assignment belongs to.
func (c CreateWorkstationAssignmentCommand) BranchID() kernel.UUID {
	return c.branchID
}

// CreatedBy returns the user registering the assignment.
func (c CreateWorkstationAssignmentCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}
