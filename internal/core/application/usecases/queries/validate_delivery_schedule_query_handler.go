package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// ValidateDeliveryScheduleQueryHandler checks a proposed delivery time
// against the order's sorting window. Orders that finished processing carry a
// stored window; for the rest the window is computed from the processing
// branch's configuration over the order's arrival time, falling back to the
// current instant when the order has not arrived yet. Rejections carry the
// earliest admissible time rather than a bare failure.
type ValidateDeliveryScheduleQueryHandler struct {
	db         *gorm.DB
	calculator services.SortingWindowCalculator
}

// NewValidateDeliveryScheduleQueryHandler creates a handler for schedule checks.
func NewValidateDeliveryScheduleQueryHandler(db *gorm.DB) ValidateDeliveryScheduleQueryHandler {
	return ValidateDeliveryScheduleQueryHandler{
		db:         db,
		calculator: services.NewSortingWindowCalculator(),
	}
}

// Handle executes the query. Returns errs.ErrObjectNotFound wrapped in an
// ObjectNotFoundError for unknown orders.
func (h ValidateDeliveryScheduleQueryHandler) Handle(
	ctx context.Context,
	query ValidateDeliveryScheduleQuery,
) (ValidateDeliveryScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateDeliveryScheduleQueryResponse{}, err
	}

	var (
		stored      sql.NullTime
		arrived     sql.NullTime
		windowHours sql.NullInt64
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT o.earliest_delivery_at, o.arrived_at, b.sorting_window_hours
		FROM orders o
		LEFT JOIN branches b ON b.id = o.processing_branch_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	if err := row.Scan(&stored, &arrived, &windowHours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ValidateDeliveryScheduleQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return ValidateDeliveryScheduleQueryResponse{}, err
	}

	earliest := stored.Time
	if !stored.Valid {
		hours := branch.DefaultSortingWindowHours
		if windowHours.Valid && windowHours.Int64 > 0 {
			hours = int(windowHours.Int64)
		}

		var arrivedAt *time.Time
		if arrived.Valid {
			arrivedAt = &arrived.Time
		}
		earliest = h.calculator.EarliestDelivery(hours, h.calculator.Baseline(arrivedAt, time.Now()))
	}

	response := ValidateDeliveryScheduleQueryResponse{
		Proposed:           query.Proposed(),
		EarliestDeliveryAt: earliest,
	}
	response.Accepted = h.calculator.ValidateSchedule(query.Proposed(), earliest) == nil

	return response, nil
}
