package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var ErrGetBranchQueueDepthQueryIsNotConstructed = errors.New(
	"GetBranchQueueDepthQuery must be created via NewGetBranchQueueDepthQuery constructor",
)

// GetBranchQueueDepthQuery retrieves the open-order count per stage at a
// processing branch. Supervisors use it to spot bottlenecked stages.
type GetBranchQueueDepthQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBranchQueueDepthQuery creates a queue depth query for one branch.
func NewGetBranchQueueDepthQuery(branchID kernel.UUID) (GetBranchQueueDepthQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetBranchQueueDepthQuery{}, err
	}

	return GetBranchQueueDepthQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBranchQueueDepthQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchQueueDepthQueryIsNotConstructed)
}

// BranchID returns the processing branch being measured.
func (q GetBranchQueueDepthQuery) BranchID() kernel.UUID {
	return q.branchID
}

// GetBranchQueueDepthQueryResponse reports the depth of one stage queue.
// Stages with no open orders are included with a zero count, so dashboards
// always render the full pipeline.
type GetBranchQueueDepthQueryResponse struct {
	Stage order.Stage
	Depth int
}
