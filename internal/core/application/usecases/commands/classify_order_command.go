package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrClassifyOrderCommandIsNotConstructed = errors.New(
	"ClassifyOrderCommand must be created via NewClassifyOrderCommand constructor",
)

// ClassifyOrderCommand runs the automatic delivery size classification for
// an order and records the result.
type ClassifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClassifyOrderCommand creates a command to classify an order's delivery size.
func NewClassifyOrderCommand(orderID kernel.UUID) (ClassifyOrderCommand, error) {
	cmd := ClassifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ClassifyOrderCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClassifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrClassifyOrderCommandIsNotConstructed)
}

// OrderID returns the order to classify.
func (c ClassifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
