package orderrepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including its garments.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The write is guarded by
// the aggregate's version: the order row is updated only where the stored
// version still matches, and a miss surfaces as ports.ErrStaleOrder. Child
// rows (garments, work log, overrides) are rewritten wholesale under the
// same guard.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	currentVersion := dto.Version
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, currentVersion).
		Updates(map[string]any{
			"origin_branch_id":     dto.OriginBranchID,
			"processing_branch_id": dto.ProcessingBranchID,
			"status":               dto.Status,
			"routing_status":       dto.RoutingStatus,
			"stage":                dto.Stage,
			"staff_id":             dto.StaffID,
			"routed_at":            dto.RoutedAt,
			"arrived_at":           dto.ArrivedAt,
			"sorted_at":            dto.SortedAt,
			"earliest_delivery_at": dto.EarliestDeliveryAt,
			"total_value":          dto.TotalValue,
			"classification":       dto.Classification,
			"version":              currentVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrStaleOrder
	}

	if err := r.replaceChildren(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceChildren rewrites the order's garments, work log, and override
// audit rows to mirror the aggregate's current state.
func (r *GormOrderRepository) replaceChildren(db *gorm.DB, dto OrderDTO) error {
	if err := db.Where("order_id = ?", dto.ID).Delete(&StageHandlerDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", dto.ID).Delete(&GarmentDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", dto.ID).Delete(&ClassificationOverrideDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Garments) > 0 {
		if err := db.Create(&dto.Garments).Error; err != nil {
			return err
		}
	}
	if len(dto.Overrides) > 0 {
		if err := db.Create(&dto.Overrides).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID, with its garments, work history, and
// classification audit trail.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Garments", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Garments.Handlers", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Overrides", func(db *gorm.DB) *gorm.DB { return db.Order("at") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInReceivedStatus retrieves the oldest order awaiting workstation
// assignment after transfer arrival.
func (r *GormOrderRepository) GetFirstInReceivedStatus(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Garments", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Garments.Handlers", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Overrides", func(db *gorm.DB) *gorm.DB { return db.Order("at") }).
		Order("arrived_at").
		First(&dto, "routing_status = ?", int(order.RoutingReceived)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first in received status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountOpenByStaff counts the orders bound to the staff member in an open
// routing status (assigned or processing).
func (r *GormOrderRepository) CountOpenByStaff(ctx context.Context, staffID kernel.UUID) (int, error) {
	if err := staffID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("staff_id = ? AND routing_status IN (?, ?)",
			staffID.Bytes(), int(order.RoutingAssigned), int(order.RoutingProcessing)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
