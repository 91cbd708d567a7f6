package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrMarkOrderReceivedCommandIsNotConstructed = errors.New(
	"MarkOrderReceivedCommand must be created via NewMarkOrderReceivedCommand constructor",
)

// MarkOrderReceivedCommand records the physical arrival of a transferred
// order at its processing branch.
type MarkOrderReceivedCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	receiverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderReceivedCommand creates a command to mark a transfer received,
// recording the receiving user.
func NewMarkOrderReceivedCommand(orderID, receiverID kernel.UUID) (MarkOrderReceivedCommand, error) {
	cmd := MarkOrderReceivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		receiverID.Validate(),
	); err != nil {
		return MarkOrderReceivedCommand{}, err
	}

	cmd.orderID = orderID
	cmd.receiverID = receiverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReceivedCommandIsNotConstructed)
}

// OrderID returns the arrived order.
func (c MarkOrderReceivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReceiverID returns the user who received the transfer.
func (c MarkOrderReceivedCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}
