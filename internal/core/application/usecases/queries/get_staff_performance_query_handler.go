package queries

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaffPerformanceQueryHandler aggregates the garment work log into
// per-staff figures: distinct orders touched, time spent per stage, and an
// orders-per-hour efficiency rate.
type GetStaffPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetStaffPerformanceQueryHandler creates a handler for performance reports.
func NewGetStaffPerformanceQueryHandler(db *gorm.DB) GetStaffPerformanceQueryHandler {
	return GetStaffPerformanceQueryHandler{db: db}
}

// Handle executes the query. Staff are ordered by identifier for stable
// report output.
func (h GetStaffPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetStaffPerformanceQuery,
) ([]GetStaffPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.staff_id,
			w.stage,
			COALESCE(SUM(w.duration_millis), 0) AS worked_millis
		FROM garment_stage_handlers w
		JOIN orders o ON o.id = w.order_id
		WHERE o.processing_branch_id = ?
		GROUP BY w.staff_id, w.stage
		ORDER BY w.staff_id, w.stage
	`, query.BranchID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetStaffPerformanceQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			rawStaffID   uuid.UUID
			stage        string
			workedMillis int64
		)
		if err = rows.Scan(&rawStaffID, &stage, &workedMillis); err != nil {
			return nil, err
		}

		staffID, idErr := kernel.UUIDFromBytes(rawStaffID[:])
		if idErr != nil {
			return nil, idErr
		}

		i, seen := index[staffID]
		if !seen {
			i = len(responses)
			index[staffID] = i
			responses = append(responses, GetStaffPerformanceQueryResponse{
				StaffID:     staffID,
				TimeByStage: make(map[order.Stage]time.Duration),
			})
		}

		worked := time.Duration(workedMillis) * time.Millisecond
		responses[i].TimeByStage[order.Stage(stage)] += worked
		responses[i].TotalWorked += worked
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Distinct orders must be counted across stages, not summed from
	// per-stage rows: one order often passes through several stages under
	// the same hands.
	for staffID, i := range index {
		var distinct int
		row := h.db.WithContext(ctx).Raw(`
			SELECT COUNT(DISTINCT w.order_id)
			FROM garment_stage_handlers w
			JOIN orders o ON o.id = w.order_id
			WHERE o.processing_branch_id = ? AND w.staff_id = ?
		`, query.BranchID().Bytes(), staffID.Bytes()).Row()
		if err = row.Scan(&distinct); err != nil {
			return nil, err
		}
		responses[i].OrdersHandled = distinct

		if hours := responses[i].TotalWorked.Hours(); hours > 0 {
			responses[i].OrdersPerHour = float64(distinct) / hours
		}
	}

	return responses, nil
}
