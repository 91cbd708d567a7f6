package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	// ErrGarmentCategoriesAreRequired is returned when intake lists no garments.
	ErrGarmentCategoriesAreRequired = errs.NewValueIsRequiredError("garment categories")
)

// CreateOrderCommand represents intake of a new order at a branch. The order
// enters the routing engine in the same transaction: transfer necessity is
// decided and, when no transfer is needed, the inspection stage is staffed
// via load balancing immediately.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), branchID,
//	    []order.GarmentType{"Shirt", "Shirt", "Suit"}, 2000)
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("intake failed: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	originBranchID kernel.UUID
	categories     []order.GarmentType
	totalValue     int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to take in a new order.
// Validates identifiers, a non-empty garment list, and a non-negative value.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	originBranchID kernel.UUID,
	categories []order.GarmentType,
	totalValue int64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOriginBranchID(originBranchID),
		cmd.setCategories(categories),
		cmd.setTotalValue(totalValue),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OriginBranchID returns the branch taking the order in.
func (c CreateOrderCommand) OriginBranchID() kernel.UUID {
	return c.originBranchID
}

// Categories returns the garment categories in intake order.
func (c CreateOrderCommand) Categories() []order.GarmentType {
	return c.categories
}

// TotalValue returns the order's monetary value in KES.
func (c CreateOrderCommand) TotalValue() int64 {
	return c.totalValue
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOriginBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	c.originBranchID = branchID
	return nil
}

func (c *CreateOrderCommand) setCategories(categories []order.GarmentType) error {
	if len(categories) == 0 {
		return ErrGarmentCategoriesAreRequired
	}
	c.categories = categories
	return nil
}

func (c *CreateOrderCommand) setTotalValue(totalValue int64) error {
	if totalValue < 0 {
		return errs.NewValueIsOutOfRangeError("total value", totalValue, 0, "unbounded")
	}
	c.totalValue = totalValue
	return nil
}
