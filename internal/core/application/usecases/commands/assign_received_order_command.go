package commands

import (
	"errors"

	"laundryops/internal/pkg/guard"
)

var ErrAssignReceivedOrderCommandIsNotConstructed = errors.New(
	"AssignReceivedOrderCommand must be created via NewAssignReceivedOrderCommand constructor",
)

// AssignReceivedOrderCommand picks one order sitting in the received state
// and moves it onto the inspection stage with a load-balanced staff pick.
// It carries no parameters; the background sweep invokes it repeatedly.
type AssignReceivedOrderCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewAssignReceivedOrderCommand creates a command to assign the next
// received order.
func NewAssignReceivedOrderCommand() (AssignReceivedOrderCommand, error) {
	return AssignReceivedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignReceivedOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignReceivedOrderCommandIsNotConstructed)
}
