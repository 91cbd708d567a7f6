package queries

import (
	"context"

	"laundryops/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersReadyForReturnQueryHandler lists finished orders on a branch's
// outbound shelf, earliest deliverable first, so return vans are loaded in
// delivery order.
type GetOrdersReadyForReturnQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersReadyForReturnQueryHandler creates a handler for outbound shelf queries.
func NewGetOrdersReadyForReturnQueryHandler(db *gorm.DB) GetOrdersReadyForReturnQueryHandler {
	return GetOrdersReadyForReturnQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersReadyForReturnQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersReadyForReturnQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrderSummaries(
		h.db.WithContext(ctx),
		`o.processing_branch_id = ? AND o.routing_status = ?
		ORDER BY o.earliest_delivery_at
		LIMIT ?`,
		query.BranchID().Bytes(), int(order.RoutingReadyForReturn), query.Limit(),
	)
}
