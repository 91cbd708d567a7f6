package staffrepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/staff"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new workstation assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *staff.Assignment) error {
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

// Update saves changes to an existing assignment (deactivation).
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *staff.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"display_name": dto.DisplayName,
			"active":       dto.Active,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Find retrieves the assignment binding the staff/stage/branch combination,
// active or not. The newest binding wins when history holds several.
func (r *GormAssignmentRepository) Find(
	ctx context.Context, staffID kernel.UUID, stage order.Stage, branchID kernel.UUID,
) (*staff.Assignment, error) {
	if err := errors.Join(
		staffID.Validate(),
		stage.Validate(),
		branchID.Validate(),
	); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&dto, "staff_id = ? AND stage = ? AND branch_id = ?",
			staffID.Bytes(), stage.String(), branchID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", staffID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveForBranchStage retrieves the active assignments for a stage at a
// branch, in creation order. Creation order fixes the balancer's first-seen
// tie-break.
func (r *GormAssignmentRepository) GetActiveForBranchStage(
	ctx context.Context, branchID kernel.UUID, stage order.Stage,
) ([]*staff.Assignment, error) {
	if err := errors.Join(
		branchID.Validate(),
		stage.Validate(),
	); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "branch_id = ? AND stage = ? AND active", branchID.Bytes(), stage.String()).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*staff.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, aErr := toDomain(dto)
		if aErr != nil {
			return nil, aErr
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
