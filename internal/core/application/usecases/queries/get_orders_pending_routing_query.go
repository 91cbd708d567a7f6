package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrGetOrdersPendingRoutingQueryIsNotConstructed = errors.New(
	"GetOrdersPendingRoutingQuery must be created via NewGetOrdersPendingRoutingQuery constructor",
)

// GetOrdersPendingRoutingQuery retrieves orders routed to a processing
// branch but not yet dispatched on a transfer. These are the bags waiting
// at satellite counters for the next van.
type GetOrdersPendingRoutingQuery struct {
	branchID kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

// NewGetOrdersPendingRoutingQuery creates a query for the pending-transfer
// backlog of a processing branch. A non-positive limit selects the default
// page size.
func NewGetOrdersPendingRoutingQuery(branchID kernel.UUID, limit int) (GetOrdersPendingRoutingQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetOrdersPendingRoutingQuery{}, err
	}

	return GetOrdersPendingRoutingQuery{
		branchID: branchID,
		limit:    normalizeLimit(limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersPendingRoutingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersPendingRoutingQueryIsNotConstructed)
}

// BranchID returns the processing branch being inspected.
func (q GetOrdersPendingRoutingQuery) BranchID() kernel.UUID {
	return q.branchID
}

// Limit returns the page size.
func (q GetOrdersPendingRoutingQuery) Limit() int {
	return q.limit
}
