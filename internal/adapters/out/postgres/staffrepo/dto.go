// Package staffrepo provides data transfer objects and mapping functions for
// workstation assignment persistence. Implements the repository pattern for
// the staff assignment aggregate.
package staffrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting workstation
// assignments. Deactivated rows are kept so historical reports retain their
// staffing context.
type AssignmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	Stage       string    `gorm:"type:varchar(32);not null;index"`
	BranchID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Active      bool      `gorm:"not null"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "workstation_assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(a *staff.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:          a.ID().Bytes(),
		StaffID:     a.StaffID().Bytes(),
		DisplayName: a.DisplayName(),
		Stage:       a.Stage().String(),
		BranchID:    a.BranchID().Bytes(),
		Active:      a.Active(),
		CreatedBy:   a.CreatedBy().Bytes(),
		CreatedAt:   a.CreatedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*staff.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	staffID, err := kernel.UUIDFromBytes(dto.StaffID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreAssignment(
		id,
		staffID,
		dto.DisplayName,
		order.Stage(dto.Stage),
		branchID,
		dto.Active,
		createdBy,
		dto.CreatedAt,
	)
}
