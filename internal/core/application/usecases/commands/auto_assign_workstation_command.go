package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var ErrAutoAssignWorkstationCommandIsNotConstructed = errors.New(
	"AutoAssignWorkstationCommand must be created via NewAutoAssignWorkstationCommand constructor",
)

// AutoAssignWorkstationCommand requests a load-balanced staff pick for an
// order at a given stage.
type AutoAssignWorkstationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	stage   order.Stage

	guard guard.ConstructorGuard
}

// NewAutoAssignWorkstationCommand creates a command for a balanced assignment.
func NewAutoAssignWorkstationCommand(orderID kernel.UUID, stage order.Stage) (AutoAssignWorkstationCommand, error) {
	cmd := AutoAssignWorkstationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		stage.Validate(),
	); err != nil {
		return AutoAssignWorkstationCommand{}, err
	}

	cmd.orderID = orderID
	cmd.stage = stage
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoAssignWorkstationCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignWorkstationCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AutoAssignWorkstationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Stage returns the target stage.
func (c AutoAssignWorkstationCommand) Stage() order.Stage {
	return c.stage
}
