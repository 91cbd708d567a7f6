package queries

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrValidateDeliveryScheduleQueryIsNotConstructed = errors.New(
	"ValidateDeliveryScheduleQuery must be created via NewValidateDeliveryScheduleQuery constructor",
)

// ValidateDeliveryScheduleQuery checks a proposed delivery time against an
// order's sorting window without committing anything.
type ValidateDeliveryScheduleQuery struct {
	orderID  kernel.UUID
	proposed time.Time

	guard guard.ConstructorGuard
}

// NewValidateDeliveryScheduleQuery creates a schedule validation query.
func NewValidateDeliveryScheduleQuery(orderID kernel.UUID, proposed time.Time) (ValidateDeliveryScheduleQuery, error) {
	var timeErr error
	if proposed.IsZero() {
		timeErr = errs.NewValueIsRequiredError("proposed")
	}

	if err := errors.Join(
		orderID.Validate(),
		timeErr,
	); err != nil {
		return ValidateDeliveryScheduleQuery{}, err
	}

	return ValidateDeliveryScheduleQuery{
		orderID:  orderID,
		proposed: proposed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidateDeliveryScheduleQuery) Validate() error {
	return q.guard.Validate(ErrValidateDeliveryScheduleQueryIsNotConstructed)
}

// OrderID returns the order whose window is checked.
func (q ValidateDeliveryScheduleQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Proposed returns the delivery time under consideration.
func (q ValidateDeliveryScheduleQuery) Proposed() time.Time {
	return q.proposed
}

// ValidateDeliveryScheduleQueryResponse reports the structured outcome of a
// schedule check. When Accepted is false, EarliestDeliveryAt carries the
// first time a delivery could be scheduled, so dispatchers can counter-offer
// instead of guessing.
type ValidateDeliveryScheduleQueryResponse struct {
	Accepted           bool
	Proposed           time.Time
	EarliestDeliveryAt time.Time
}
