package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var ErrGetOrdersByStageQueryIsNotConstructed = errors.New(
	"GetOrdersByStageQuery must be created via NewGetOrdersByStageQuery constructor",
)

// GetOrdersByStageQuery retrieves open orders sitting at one processing
// stage of a branch.
type GetOrdersByStageQuery struct {
	branchID kernel.UUID
	stage    order.Stage
	limit    int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStageQuery creates a query for a branch's stage queue.
// A non-positive limit selects the default page size.
func NewGetOrdersByStageQuery(branchID kernel.UUID, stage order.Stage, limit int) (GetOrdersByStageQuery, error) {
	if err := errors.Join(
		branchID.Validate(),
		stage.Validate(),
	); err != nil {
		return GetOrdersByStageQuery{}, err
	}

	return GetOrdersByStageQuery{
		branchID: branchID,
		stage:    stage,
		limit:    normalizeLimit(limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStageQueryIsNotConstructed)
}

// BranchID returns the processing branch.
func (q GetOrdersByStageQuery) BranchID() kernel.UUID {
	return q.branchID
}

// Stage returns the stage whose queue is listed.
func (q GetOrdersByStageQuery) Stage() order.Stage {
	return q.stage
}

// Limit returns the page size.
func (q GetOrdersByStageQuery) Limit() int {
	return q.limit
}
