package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// ClassifyDeliveryQueryHandler runs the size classifier over an order's
// stored value and garments. Pure read: the stored classification, if any,
// is untouched.
type ClassifyDeliveryQueryHandler struct {
	db         *gorm.DB
	classifier services.DeliveryClassifier
}

// NewClassifyDeliveryQueryHandler creates a handler using the given classifier.
func NewClassifyDeliveryQueryHandler(db *gorm.DB, classifier services.DeliveryClassifier) ClassifyDeliveryQueryHandler {
	return ClassifyDeliveryQueryHandler{
		db:         db,
		classifier: classifier,
	}
}

// Handle executes the query and returns the classification with its basis
// and justification.
func (h ClassifyDeliveryQueryHandler) Handle(
	ctx context.Context,
	query ClassifyDeliveryQuery,
) (services.ClassificationResult, error) {
	if err := query.Validate(); err != nil {
		return services.ClassificationResult{}, err
	}

	var totalValue int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT total_value
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&totalValue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return services.ClassificationResult{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return services.ClassificationResult{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT category
		FROM order_garments
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return services.ClassificationResult{}, err
	}
	defer rows.Close()

	garments := make([]order.Garment, 0)
	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return services.ClassificationResult{}, err
		}

		garment, gErr := order.NewGarment(order.GarmentType(category))
		if gErr != nil {
			return services.ClassificationResult{}, gErr
		}
		garments = append(garments, garment)
	}
	if err = rows.Err(); err != nil {
		return services.ClassificationResult{}, err
	}

	return h.classifier.Classify(totalValue, garments), nil
}
