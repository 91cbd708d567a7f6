package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrDispatchTransferCommandIsNotConstructed = errors.New(
	"DispatchTransferCommand must be created via NewDispatchTransferCommand constructor",
)

// DispatchTransferCommand marks a pending order as loaded onto a transfer
// vehicle bound for its processing branch.
type DispatchTransferCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchTransferCommand creates a command to dispatch a branch transfer.
func NewDispatchTransferCommand(orderID, actorID kernel.UUID) (DispatchTransferCommand, error) {
	cmd := DispatchTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
	); err != nil {
		return DispatchTransferCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchTransferCommand) Validate() error {
	return c.guard.Validate(ErrDispatchTransferCommandIsNotConstructed)
}

// OrderID returns the order being transferred.
func (c DispatchTransferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user.
func (c DispatchTransferCommand) ActorID() kernel.UUID {
	return c.actorID
}
