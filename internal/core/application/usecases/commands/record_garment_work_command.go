package commands

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrRecordGarmentWorkCommandIsNotConstructed = errors.New(
	"RecordGarmentWorkCommand must be created via NewRecordGarmentWorkCommand constructor",
)

// RecordGarmentWorkCommand logs completed stage work on a single garment:
// who handled it, when, and for how long.
type RecordGarmentWorkCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	garmentIndex int
	stage        order.Stage
	staffID      kernel.UUID
	completedAt  time.Time
	worked       time.Duration

	guard guard.ConstructorGuard
}

// NewRecordGarmentWorkCommand creates a command to log garment stage work.
func NewRecordGarmentWorkCommand(
	orderID kernel.UUID,
	garmentIndex int,
	stage order.Stage,
	staffID kernel.UUID,
	completedAt time.Time,
	worked time.Duration,
) (RecordGarmentWorkCommand, error) {
	cmd := RecordGarmentWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	var indexErr error
	if garmentIndex < 0 {
		indexErr = errs.NewValueIsInvalidError("garmentIndex")
	}

	var timeErr error
	if completedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("completedAt")
	}

	if err := errors.Join(
		orderID.Validate(),
		stage.Validate(),
		staffID.Validate(),
		indexErr,
		timeErr,
	); err != nil {
		return RecordGarmentWorkCommand{}, err
	}

	cmd.orderID = orderID
	cmd.garmentIndex = garmentIndex
	cmd.stage = stage
	cmd.staffID = staffID
	cmd.completedAt = completedAt
	cmd.worked = worked
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordGarmentWorkCommand) Validate() error {
	return c.guard.Validate(ErrRecordGarmentWorkCommandIsNotConstructed)
}

// OrderID returns the order the garment belongs to.
func (c RecordGarmentWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GarmentIndex returns the garment's position within the order.
func (c RecordGarmentWorkCommand) GarmentIndex() int {
	return c.garmentIndex
}

// Stage returns the stage the work was performed at.
func (c RecordGarmentWorkCommand) Stage() order.Stage {
	return c.stage
}

// StaffID returns the staff member who performed the work.
func (c RecordGarmentWorkCommand) StaffID() kernel.UUID {
	return c.staffID
}

// CompletedAt returns when the work finished.
func (c RecordGarmentWorkCommand) CompletedAt() time.Time {
	return c.completedAt
}

// Worked returns the time spent on the garment at the stage.
func (c RecordGarmentWorkCommand) Worked() time.Duration {
	return c.worked
}
