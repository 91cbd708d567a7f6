package queries

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var ErrGetStaffPerformanceQueryIsNotConstructed = errors.New(
	"GetStaffPerformanceQuery must be created via NewGetStaffPerformanceQuery constructor",
)

// GetStaffPerformanceQuery retrieves per-staff productivity figures for a
// processing branch, aggregated from the garment work log.
type GetStaffPerformanceQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStaffPerformanceQuery creates a staff performance query for one branch.
func NewGetStaffPerformanceQuery(branchID kernel.UUID) (GetStaffPerformanceQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetStaffPerformanceQuery{}, err
	}

	return GetStaffPerformanceQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaffPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffPerformanceQueryIsNotConstructed)
}

// BranchID returns the processing branch being reported on.
func (q GetStaffPerformanceQuery) BranchID() kernel.UUID {
	return q.branchID
}

// GetStaffPerformanceQueryResponse reports one staff member's productivity.
// Efficiency is distinct orders handled divided by total hours worked; it is
// zero when no work time has been logged.
type GetStaffPerformanceQueryResponse struct {
	StaffID       kernel.UUID
	OrdersHandled int
	TimeByStage   map[order.Stage]time.Duration
	TotalWorked   time.Duration
	OrdersPerHour float64
}
