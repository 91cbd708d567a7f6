package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrCompleteProcessingCommandIsNotConstructed = errors.New(
	"CompleteProcessingCommand must be created via NewCompleteProcessingCommand constructor",
)

// CompleteProcessingCommand finishes all processing stages of an order,
// making it ready for return transfer and opening its sorting window.
type CompleteProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteProcessingCommand creates a command to complete processing.
func NewCompleteProcessingCommand(orderID, actorID kernel.UUID) (CompleteProcessingCommand, error) {
	cmd := CompleteProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
	); err != nil {
		return CompleteProcessingCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteProcessingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessingCommandIsNotConstructed)
}

// OrderID returns the completed order.
func (c CompleteProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user.
func (c CompleteProcessingCommand) ActorID() kernel.UUID {
	return c.actorID
}
