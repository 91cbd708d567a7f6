package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrClassifyDeliveryQueryIsNotConstructed = errors.New(
	"ClassifyDeliveryQuery must be created via NewClassifyDeliveryQuery constructor",
)

// ClassifyDeliveryQuery computes the delivery size class an order would
// receive, without recording anything. Front desks use it to quote the
// delivery arrangement while the customer is still at the counter.
type ClassifyDeliveryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClassifyDeliveryQuery creates a classification preview query.
func NewClassifyDeliveryQuery(orderID kernel.UUID) (ClassifyDeliveryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ClassifyDeliveryQuery{}, err
	}

	return ClassifyDeliveryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ClassifyDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrClassifyDeliveryQueryIsNotConstructed)
}

// OrderID returns the order to classify.
func (q ClassifyDeliveryQuery) OrderID() kernel.UUID {
	return q.orderID
}
