package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrGetOrdersByStaffQueryIsNotConstructed = errors.New(
	"GetOrdersByStaffQuery must be created via NewGetOrdersByStaffQuery constructor",
)

// GetOrdersByStaffQuery retrieves the orders currently bound to one staff
// member, i.e. their personal work queue.
type GetOrdersByStaffQuery struct {
	staffID kernel.UUID
	limit   int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStaffQuery creates a query for a staff member's open orders.
// A non-positive limit selects the default page size.
func NewGetOrdersByStaffQuery(staffID kernel.UUID, limit int) (GetOrdersByStaffQuery, error) {
	if err := staffID.Validate(); err != nil {
		return GetOrdersByStaffQuery{}, err
	}

	return GetOrdersByStaffQuery{
		staffID: staffID,
		limit:   normalizeLimit(limit),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStaffQueryIsNotConstructed)
}

// StaffID returns the staff member whose queue is listed.
func (q GetOrdersByStaffQuery) StaffID() kernel.UUID {
	return q.staffID
}

// Limit returns the page size.
func (q GetOrdersByStaffQuery) Limit() int {
	return q.limit
}
