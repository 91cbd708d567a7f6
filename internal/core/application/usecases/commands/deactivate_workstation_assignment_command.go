package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var ErrDeactivateWorkstationAssignmentCommandIsNotConstructed = errors.New(
	"DeactivateWorkstationAssignmentCommand must be created via NewDeactivateWorkstationAssignmentCommand constructor",
)

// DeactivateWorkstationAssignmentCommand withdraws a staff member from a
// stage at a branch. The record is kept for historical reporting.
type DeactivateWorkstationAssignmentCommand struct { //nolint:recvcheck //using for validation
	staffID  kernel.UUID
	stage    order.Stage
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateWorkstationAssignmentCommand creates a command to withdraw an
// assignment.
func NewDeactivateWorkstationAssignmentCommand(
	staffID kernel.UUID, stage order.Stage, branchID kernel.UUID,
) (DeactivateWorkstationAssignmentCommand, error) {
	cmd := DeactivateWorkstationAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staffID.Validate(),
		stage.Validate(),
		branchID.Validate(),
	); err != nil {
		return DeactivateWorkstationAssignmentCommand{}, err
	}

	cmd.staffID = staffID
	cmd.stage = stage
	cmd.branchID = branchID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateWorkstationAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateWorkstationAssignmentCommandIsNotConstructed)
}

// StaffID returns the staff member being withdrawn.
func (c DeactivateWorkstationAssignmentCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Stage returns the stage being withdrawn from.
func (c DeactivateWorkstationAssignmentCommand) Stage() order.Stage {
	return c.stage
}

// BranchID returns the branch of the assignment.
func (c DeactivateWorkstationAssignmentCommand) BranchID() kernel.UUID {
	return c.branchID
}
