package queries

import (
	"context"

	"laundryops/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersPendingRoutingQueryHandler lists orders awaiting transfer
// dispatch toward a processing branch, oldest routed first.
type GetOrdersPendingRoutingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersPendingRoutingQueryHandler creates a handler for pending-transfer queries.
func NewGetOrdersPendingRoutingQueryHandler(db *gorm.DB) GetOrdersPendingRoutingQueryHandler {
	return GetOrdersPendingRoutingQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersPendingRoutingQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersPendingRoutingQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrderSummaries(
		h.db.WithContext(ctx),
		`o.processing_branch_id = ? AND o.routing_status = ?
		ORDER BY o.routed_at
		LIMIT ?`,
		query.BranchID().Bytes(), int(order.RoutingPending), query.Limit(),
	)
}
