package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrStartProcessingCommandIsNotConstructed = errors.New(
	"StartProcessingCommand must be created via NewStartProcessingCommand constructor",
)

// StartProcessingCommand records that a staff member has begun active work
// on their assigned order.
type StartProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProcessingCommand creates a command to begin active processing.
func NewStartProcessingCommand(orderID, staffID kernel.UUID) (StartProcessingCommand, error) {
	cmd := StartProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		staffID.Validate(),
	); err != nil {
		return StartProcessingCommand{}, err
	}

	cmd.orderID = orderID
	cmd.staffID = staffID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProcessingCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessingCommandIsNotConstructed)
}

// OrderID returns the order being worked.
func (c StartProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the staff member starting work.
func (c StartProcessingCommand) StaffID() kernel.UUID {
	return c.staffID
}
