package queries

import (
	"context"

	"laundryops/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersByStaffQueryHandler lists the open orders bound to a staff
// member: assigned work first awaiting a start, then work in progress.
type GetOrdersByStaffQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStaffQueryHandler creates a handler for staff queue queries.
func NewGetOrdersByStaffQueryHandler(db *gorm.DB) GetOrdersByStaffQueryHandler {
	return GetOrdersByStaffQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersByStaffQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStaffQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrderSummaries(
		h.db.WithContext(ctx),
		`o.staff_id = ? AND o.routing_status IN (?, ?)
		ORDER BY o.routing_status, o.id
		LIMIT ?`,
		query.StaffID().Bytes(), int(order.RoutingAssigned), int(order.RoutingProcessing), query.Limit(),
	)
}
