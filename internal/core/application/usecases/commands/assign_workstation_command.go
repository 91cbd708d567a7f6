package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var ErrAssignWorkstationCommandIsNotConstructed = errors.New(
	"AssignWorkstationCommand must be created via NewAssignWorkstationCommand constructor",
)

// AssignWorkstationCommand moves an order onto a processing stage, optionally
// pinning it to a specific staff member. A nil staff member leaves the order
// queued at the stage for later pickup.
type AssignWorkstationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	stage   order.Stage
	staffID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkstationCommand creates a command to place an order at a stage.
func NewAssignWorkstationCommand(orderID kernel.UUID, stage order.Stage, staffID *kernel.UUID) (AssignWorkstationCommand, error) {
	cmd := AssignWorkstationCommand{
		guard: guard.NewConstructorGuard(),
	}

	var staffErr error
	if staffID != nil {
		staffErr = staffID.Validate()
	}

	if err := errors.Join(
		orderID.Validate(),
		stage.Validate(),
		staffErr,
	); err != nil {
		return AssignWorkstationCommand{}, err
	}

	cmd.orderID = orderID
	cmd.stage = stage
	cmd.staffID = staffID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkstationCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkstationCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignWorkstationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Stage returns the target processing stage.
func (c AssignWorkstationCommand) Stage() order.Stage {
	return c.stage
}

// StaffID returns the staff member to pin, or nil for stage-only assignment.
func (c AssignWorkstationCommand) StaffID() *kernel.UUID {
	return c.staffID
}
