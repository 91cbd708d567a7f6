// Package branchrepo provides data transfer objects and mapping functions for branch persistence.
// Implements the repository pattern for the branch domain aggregate.
package branchrepo

import (
	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BranchDTO represents the database structure for persisting branches.
type BranchDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"type:varchar(255);not null"`
	Kind               string     `gorm:"type:varchar(16);not null"`
	MainBranchID       *uuid.UUID `gorm:"type:uuid;index"`
	SortingWindowHours int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for branch entities.
func (BranchDTO) TableName() string {
	return "branches"
}

// fromDomain converts a branch domain aggregate to its database representation.
func fromDomain(b *branch.Branch) BranchDTO {
	var mainBranchID *uuid.UUID
	if id := b.MainBranchID(); id != nil {
		raw := id.Bytes()
		mainBranchID = &raw
	}

	return BranchDTO{
		ID:                 b.ID().Bytes(),
		Name:               b.Name(),
		Kind:               string(b.Kind()),
		MainBranchID:       mainBranchID,
		SortingWindowHours: b.ConfiguredSortingWindowHours(),
	}
}

// toDomain converts a database DTO to a branch domain aggregate.
func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var mainBranchID *kernel.UUID
	if dto.MainBranchID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.MainBranchID)[:])
		if mErr != nil {
			return nil, mErr
		}
		mainBranchID = &mID
	}

	return branch.NewBranch(id, dto.Name, branch.Kind(dto.Kind), mainBranchID, dto.SortingWindowHours)
}
