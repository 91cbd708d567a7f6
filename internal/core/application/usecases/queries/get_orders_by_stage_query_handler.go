package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByStageQueryHandler lists the open orders at one stage of a
// branch, longest waiting first.
type GetOrdersByStageQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStageQueryHandler creates a handler for stage queue queries.
func NewGetOrdersByStageQueryHandler(db *gorm.DB) GetOrdersByStageQueryHandler {
	return GetOrdersByStageQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersByStageQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStageQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrderSummaries(
		h.db.WithContext(ctx),
		`o.processing_branch_id = ? AND o.stage = ?
		ORDER BY o.arrived_at NULLS LAST, o.id
		LIMIT ?`,
		query.BranchID().Bytes(), query.Stage().String(), query.Limit(),
	)
}
