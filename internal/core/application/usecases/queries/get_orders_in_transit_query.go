package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrGetOrdersInTransitQueryIsNotConstructed = errors.New(
	"GetOrdersInTransitQuery must be created via NewGetOrdersInTransitQuery constructor",
)

// GetOrdersInTransitQuery retrieves orders currently on a transfer vehicle
// bound for a processing branch.
type GetOrdersInTransitQuery struct {
	branchID kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

// NewGetOrdersInTransitQuery creates a query for in-transit orders headed
// to the branch. A non-positive limit selects the default page size.
func NewGetOrdersInTransitQuery(branchID kernel.UUID, limit int) (GetOrdersInTransitQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetOrdersInTransitQuery{}, err
	}

	return GetOrdersInTransitQuery{
		branchID: branchID,
		limit:    normalizeLimit(limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersInTransitQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersInTransitQueryIsNotConstructed)
}

// BranchID returns the destination processing branch.
func (q GetOrdersInTransitQuery) BranchID() kernel.UUID {
	return q.branchID
}

// Limit returns the page size.
func (q GetOrdersInTransitQuery) Limit() int {
	return q.limit
}
