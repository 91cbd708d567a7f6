package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrGetOrdersReadyForReturnQueryIsNotConstructed = errors.New(
	"GetOrdersReadyForReturnQuery must be created via NewGetOrdersReadyForReturnQuery constructor",
)

// GetOrdersReadyForReturnQuery retrieves finished orders at a processing
// branch awaiting return transfer, with their sorting-window delivery times.
type GetOrdersReadyForReturnQuery struct {
	branchID kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

// NewGetOrdersReadyForReturnQuery creates a query for a branch's outbound
// shelf. A non-positive limit selects the default page size.
func NewGetOrdersReadyForReturnQuery(branchID kernel.UUID, limit int) (GetOrdersReadyForReturnQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetOrdersReadyForReturnQuery{}, err
	}

	return GetOrdersReadyForReturnQuery{
		branchID: branchID,
		limit:    normalizeLimit(limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersReadyForReturnQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersReadyForReturnQueryIsNotConstructed)
}

// BranchID returns the processing branch.
func (q GetOrdersReadyForReturnQuery) BranchID() kernel.UUID {
	return q.branchID
}

// Limit returns the page size.
func (q GetOrdersReadyForReturnQuery) Limit() int {
	return q.limit
}
