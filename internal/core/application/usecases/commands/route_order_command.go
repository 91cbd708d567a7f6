package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrRouteOrderCommandIsNotConstructed = errors.New(
	"RouteOrderCommand must be created via NewRouteOrderCommand constructor",
)

// RouteOrderCommand performs the initial routing transition for an existing
// order: the origin branch's metadata decides the processing branch, transfer
// necessity, and, when no transfer is needed, the inspection-stage staffing.
// Re-routing an already-routed order is a no-op.
type RouteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRouteOrderCommand creates a command to route an order, recording the
// acting user for audit purposes.
func NewRouteOrderCommand(orderID, actorID kernel.UUID) (RouteOrderCommand, error) {
	cmd := RouteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
	); err != nil {
		return RouteOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RouteOrderCommand) Validate() error {
	return c.guard.Validate(ErrRouteOrderCommandIsNotConstructed)
}

// OrderID returns the order to route.
func (c RouteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user.
func (c RouteOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}
