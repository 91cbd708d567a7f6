// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLimit caps list queries that do not request an explicit page size.
const DefaultLimit = 50

// normalizeLimit applies the default page size to non-positive limits.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// OrderSummary is the read model shared by the order list queries.
// Optional routing fields stay nil until the order reaches the matching
// point of its lifecycle.
type OrderSummary struct {
	ID                 kernel.UUID
	OriginBranchID     kernel.UUID
	ProcessingBranchID *kernel.UUID
	Status             order.Status
	RoutingStatus      order.RoutingStatus
	Stage              *order.Stage
	StaffID            *kernel.UUID
	EarliestDeliveryAt *time.Time
	TotalValue         int64
	Classification     *order.SizeClass
	GarmentCount       int
}

// orderSummaryColumns is the select list scanOrderSummaries expects,
// in scan order.
const orderSummaryColumns = `
	o.id,
	o.origin_branch_id,
	o.processing_branch_id,
	o.status,
	o.routing_status,
	o.stage,
	o.staff_id,
	o.earliest_delivery_at,
	o.total_value,
	o.classification,
	(SELECT COUNT(*) FROM order_garments g WHERE g.order_id = o.id) AS garment_count`

// scanOrderSummaries drains a result set produced with orderSummaryColumns.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var (
			summary            OrderSummary
			id                 uuid.UUID
			originBranchID     uuid.UUID
			processingBranchID uuid.NullUUID
			status             int
			routingStatus      int
			stage              sql.NullString
			staffID            uuid.NullUUID
			earliestDelivery   sql.NullTime
			classification     sql.NullString
		)

		if err := rows.Scan(
			&id,
			&originBranchID,
			&processingBranchID,
			&status,
			&routingStatus,
			&stage,
			&staffID,
			&earliestDelivery,
			&summary.TotalValue,
			&classification,
			&summary.GarmentCount,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.ID = orderID

		originID, err := kernel.UUIDFromBytes(originBranchID[:])
		if err != nil {
			return nil, err
		}
		summary.OriginBranchID = originID

		if processingBranchID.Valid {
			processingID, idErr := kernel.UUIDFromBytes(processingBranchID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			summary.ProcessingBranchID = &processingID
		}

		summary.Status = order.Status(status)
		summary.RoutingStatus = order.RoutingStatus(routingStatus)

		if stage.Valid {
			s := order.Stage(stage.String)
			summary.Stage = &s
		}

		if staffID.Valid {
			staff, idErr := kernel.UUIDFromBytes(staffID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			summary.StaffID = &staff
		}

		if earliestDelivery.Valid {
			t := earliestDelivery.Time
			summary.EarliestDeliveryAt = &t
		}

		if classification.Valid {
			class := order.SizeClass(classification.String)
			summary.Classification = &class
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// queryOrderSummaries runs a filtered order listing and scans it into the
// shared read model. The where clause refers to the orders table as "o".
func queryOrderSummaries(db *gorm.DB, where string, args ...any) ([]OrderSummary, error) {
	rows, err := db.Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders o
		WHERE `+where, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
