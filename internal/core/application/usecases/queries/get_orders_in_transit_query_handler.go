package queries

import (
	"context"

	"laundryops/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersInTransitQueryHandler lists orders on the road toward a
// processing branch, oldest routed first. Receiving staff use this as the
// expected-arrivals manifest.
type GetOrdersInTransitQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersInTransitQueryHandler creates a handler for in-transit queries.
func NewGetOrdersInTransitQueryHandler(db *gorm.DB) GetOrdersInTransitQueryHandler {
	return GetOrdersInTransitQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersInTransitQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersInTransitQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrderSummaries(
		h.db.WithContext(ctx),
		`o.processing_branch_id = ? AND o.routing_status = ?
		ORDER BY o.routed_at
		LIMIT ?`,
		query.BranchID().Bytes(), int(order.RoutingInTransit), query.Limit(),
	)
}
