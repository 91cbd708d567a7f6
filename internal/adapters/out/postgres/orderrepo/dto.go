// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes on
// the columns routing and assignment flows filter by.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OriginBranchID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProcessingBranchID *uuid.UUID `gorm:"type:uuid;index"`
	Status             int        `gorm:"type:int;not null"`
	RoutingStatus      int        `gorm:"type:int;not null;index"`
	Stage              *string    `gorm:"type:varchar(32);index"`
	StaffID            *uuid.UUID `gorm:"type:uuid;index"`
	RoutedAt           *time.Time
	ArrivedAt          *time.Time
	SortedAt           *time.Time
	EarliestDeliveryAt *time.Time
	TotalValue         int64   `gorm:"type:bigint;not null"`
	Classification     *string `gorm:"type:varchar(16)"`
	Version            int64   `gorm:"type:bigint;not null"`

	Garments  []GarmentDTO                `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Overrides []ClassificationOverrideDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GarmentDTO represents one garment line item of an order. Position fixes
// the garment's index within the order, which work-recording commands
// address garments by.
type GarmentDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"type:int;not null"`
	Category  string    `gorm:"type:varchar(64);not null"`
	Inspected bool      `gorm:"not null"`
	Condition string    `gorm:"type:varchar(255)"`

	Handlers []StageHandlerDTO `gorm:"foreignKey:GarmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for garment entities.
func (GarmentDTO) TableName() string {
	return "order_garments"
}

// StageHandlerDTO represents one append-only work log entry: a staff member
// completing work on a garment at a stage. OrderID is denormalized so
// reporting queries aggregate without touching the garment table.
type StageHandlerDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	GarmentID   int64     `gorm:"not null;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Stage       string    `gorm:"type:varchar(32);not null"`
	StaffID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CompletedAt time.Time `gorm:"not null"`
	// Milliseconds rather than seconds: worked durations round-trip without
	// truncation.
	DurationMillis int64 `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for work log entries.
func (StageHandlerDTO) TableName() string {
	return "garment_stage_handlers"
}

// ClassificationOverrideDTO represents one entry of an order's append-only
// classification override audit trail.
type ClassificationOverrideDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FromClass     string    `gorm:"type:varchar(16);not null"`
	ToClass       string    `gorm:"type:varchar(16);not null"`
	ActorID       uuid.UUID `gorm:"type:uuid;not null"`
	Justification string    `gorm:"type:varchar(1024);not null"`
	At            time.Time `gorm:"not null"`
}

// TableName specifies the database table name for override audit entries.
func (ClassificationOverrideDTO) TableName() string {
	return "classification_overrides"
}

// fromDomain converts an order domain aggregate to its database representation,
// including garments, work log entries, and the override audit trail.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var processingBranchID *uuid.UUID
	if id := aggregate.ProcessingBranchID(); id != nil {
		raw := id.Bytes()
		processingBranchID = &raw
	}

	var stage *string
	if s := aggregate.Stage(); s != nil {
		raw := s.String()
		stage = &raw
	}

	var staffID *uuid.UUID
	if id := aggregate.StaffID(); id != nil {
		raw := id.Bytes()
		staffID = &raw
	}

	var classification *string
	if c := aggregate.Classification(); c != nil {
		raw := string(*c)
		classification = &raw
	}

	garments := aggregate.Garments()
	garmentDTOs := make([]GarmentDTO, 0, len(garments))
	for i := range garments {
		garmentDTOs = append(garmentDTOs, garmentFromDomain(orderID, i, &garments[i]))
	}

	overrides := aggregate.Overrides()
	overrideDTOs := make([]ClassificationOverrideDTO, 0, len(overrides))
	for _, o := range overrides {
		overrideDTOs = append(overrideDTOs, ClassificationOverrideDTO{
			OrderID:       orderID,
			FromClass:     string(o.From()),
			ToClass:       string(o.To()),
			ActorID:       o.ActorID().Bytes(),
			Justification: o.Justification(),
			At:            o.At(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		OriginBranchID:     aggregate.OriginBranchID().Bytes(),
		ProcessingBranchID: processingBranchID,
		Status:             int(aggregate.Status()),
		RoutingStatus:      int(aggregate.RoutingStatus()),
		Stage:              stage,
		StaffID:            staffID,
		RoutedAt:           aggregate.RoutedAt(),
		ArrivedAt:          aggregate.ArrivedAt(),
		SortedAt:           aggregate.SortedAt(),
		EarliestDeliveryAt: aggregate.EarliestDeliveryAt(),
		TotalValue:         aggregate.TotalValue(),
		Classification:     classification,
		Version:            aggregate.Version(),
		Garments:           garmentDTOs,
		Overrides:          overrideDTOs,
	}
}

// garmentFromDomain converts one garment with its work log to DTOs.
func garmentFromDomain(orderID uuid.UUID, position int, g *order.Garment) GarmentDTO {
	handlers := make([]StageHandlerDTO, 0)
	for _, stage := range g.HandledStages() {
		for _, entry := range g.Handlers(stage) {
			handlers = append(handlers, StageHandlerDTO{
				OrderID:        orderID,
				Stage:          stage.String(),
				StaffID:        entry.StaffID.Bytes(),
				CompletedAt:    entry.CompletedAt,
				DurationMillis: entry.Worked.Milliseconds(),
			})
		}
	}

	return GarmentDTO{
		OrderID:   orderID,
		Position:  position,
		Category:  string(g.Category()),
		Inspected: g.Inspected(),
		Condition: g.Condition(),
		Handlers:  handlers,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including garments, work history,
// classification, and version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originBranchID, err := kernel.UUIDFromBytes(dto.OriginBranchID[:])
	if err != nil {
		return nil, err
	}

	var processingBranchID *kernel.UUID
	if dto.ProcessingBranchID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.ProcessingBranchID)[:])
		if pErr != nil {
			return nil, pErr
		}
		processingBranchID = &pID
	}

	var stage *order.Stage
	if dto.Stage != nil {
		s := order.Stage(*dto.Stage)
		stage = &s
	}

	var staffID *kernel.UUID
	if dto.StaffID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.StaffID)[:])
		if sErr != nil {
			return nil, sErr
		}
		staffID = &sID
	}

	var classification *order.SizeClass
	if dto.Classification != nil {
		c := order.SizeClass(*dto.Classification)
		classification = &c
	}

	garments := make([]order.Garment, 0, len(dto.Garments))
	for _, gDto := range dto.Garments {
		g, gErr := garmentToDomain(gDto)
		if gErr != nil {
			return nil, gErr
		}
		garments = append(garments, g)
	}

	overrides := make([]order.ClassificationOverride, 0, len(dto.Overrides))
	for _, oDto := range dto.Overrides {
		actorID, aErr := kernel.UUIDFromBytes(oDto.ActorID[:])
		if aErr != nil {
			return nil, aErr
		}
		overrides = append(overrides, order.RestoreClassificationOverride(
			order.SizeClass(oDto.FromClass),
			order.SizeClass(oDto.ToClass),
			actorID,
			oDto.Justification,
			oDto.At,
		))
	}

	return order.RestoreOrder(
		id,
		originBranchID,
		processingBranchID,
		garments,
		order.Status(dto.Status),
		order.RoutingStatus(dto.RoutingStatus),
		stage,
		staffID,
		dto.RoutedAt,
		dto.ArrivedAt,
		dto.SortedAt,
		dto.EarliestDeliveryAt,
		dto.TotalValue,
		classification,
		overrides,
		dto.Version,
	)
}

// garmentToDomain converts a garment DTO with its work log back to the
// domain representation.
func garmentToDomain(dto GarmentDTO) (order.Garment, error) {
	handlers := make(map[order.Stage][]order.StageHandler)
	for _, h := range dto.Handlers {
		staffID, err := kernel.UUIDFromBytes(h.StaffID[:])
		if err != nil {
			return order.Garment{}, err
		}

		stage := order.Stage(h.Stage)
		handlers[stage] = append(handlers[stage], order.StageHandler{
			StaffID:     staffID,
			CompletedAt: h.CompletedAt,
			Worked:      time.Duration(h.DurationMillis) * time.Millisecond,
		})
	}

	return order.RestoreGarment(order.GarmentType(dto.Category), handlers, dto.Inspected, dto.Condition)
}
