package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var ErrOverrideClassificationCommandIsNotConstructed = errors.New(
	"OverrideClassificationCommand must be created via NewOverrideClassificationCommand constructor",
)

// OverrideClassificationCommand manually replaces an order's delivery size
// class. The actor's override capability is checked by the handler; the
// justification travels into the order's audit trail.
type OverrideClassificationCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	target        order.SizeClass
	actorID       kernel.UUID
	justification string
	mayOverride   bool

	guard guard.ConstructorGuard
}

// NewOverrideClassificationCommand creates a command to override a classification.
// mayOverride carries the actor's capability flag, resolved by the caller.
func NewOverrideClassificationCommand(
	orderID kernel.UUID,
	target order.SizeClass,
	actorID kernel.UUID,
	justification string,
	mayOverride bool,
) (OverrideClassificationCommand, error) {
	cmd := OverrideClassificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		target.Validate(),
		actorID.Validate(),
	); err != nil {
		return OverrideClassificationCommand{}, err
	}

	cmd.orderID = orderID
	cmd.target = target
	cmd.actorID = actorID
	cmd.justification = justification
	cmd.mayOverride = mayOverride
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideClassificationCommand) Validate() error {
	return c.guard.Validate(ErrOverrideClassificationCommandIsNotConstructed)
}

// OrderID returns the order being overridden.
func (c OverrideClassificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested size class.
func (c OverrideClassificationCommand) Target() order.SizeClass {
	return c.target
}

// ActorID returns the user requesting the override.
func (c OverrideClassificationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Justification returns the override justification text.
func (c OverrideClassificationCommand) Justification() string {
	return c.justification
}

// MayOverride reports whether the actor holds the override capability.
func (c OverrideClassificationCommand) MayOverride() bool {
	return c.mayOverride
}
