package queries

import (
	"context"

	"laundryops/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetBranchQueueDepthQueryHandler counts open orders per stage at a branch.
// The result always covers every stage of the pipeline, in processing order.
type GetBranchQueueDepthQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchQueueDepthQueryHandler creates a handler for queue depth queries.
func NewGetBranchQueueDepthQueryHandler(db *gorm.DB) GetBranchQueueDepthQueryHandler {
	return GetBranchQueueDepthQueryHandler{db: db}
}

// Handle executes the query.
func (h GetBranchQueueDepthQueryHandler) Handle(
	ctx context.Context,
	query GetBranchQueueDepthQuery,
) ([]GetBranchQueueDepthQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.stage,
			COUNT(*) AS depth
		FROM orders o
		WHERE o.processing_branch_id = ?
		  AND o.routing_status IN (?, ?)
		  AND o.stage IS NOT NULL
		GROUP BY o.stage
	`, query.BranchID().Bytes(), int(order.RoutingAssigned), int(order.RoutingProcessing)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	depths := make(map[order.Stage]int)
	for rows.Next() {
		var (
			stage string
			depth int
		)
		if err = rows.Scan(&stage, &depth); err != nil {
			return nil, err
		}
		depths[order.Stage(stage)] = depth
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	responses := make([]GetBranchQueueDepthQueryResponse, 0, len(order.Stages()))
	for _, stage := range order.Stages() {
		responses = append(responses, GetBranchQueueDepthQueryResponse{
			Stage: stage,
			Depth: depths[stage],
		})
	}

	return responses, nil
}
