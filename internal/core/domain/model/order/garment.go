package order

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// Domain errors for garment operations.
var (
	// ErrCategoryIsRequired is returned when creating a garment without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
	// ErrDurationIsInvalid is returned when recording work with a negative duration.
	ErrDurationIsInvalid = errs.NewValueIsRequiredError("duration must not be negative")
)

// GarmentType is the garment's category ("Shirt", "Suit", "Bedding", ...).
// The delivery classifier uses it to estimate weight; unknown categories fall
// back to a default weight rather than failing.
type GarmentType string

// StageHandler records one staff member completing work on a garment at a
// production stage. Entries are append-only: a stage worked by several staff
// in turn keeps one entry per handler.
type StageHandler struct {
	StaffID     kernel.UUID
	CompletedAt time.Time
	Worked      time.Duration
}

// Garment is a line item within an Order. Garments are owned by their order
// (embedded, not separately addressable) and carry the per-stage work history
// that staff performance metrics aggregate over.
//
// Invariants:
//   - The handler list for a stage is append-only.
//   - A stage's duration accumulates across handlers; it is never overwritten.
type Garment struct {
	// category drives weight estimation for delivery classification
	category GarmentType

	// handlers holds the append-only per-stage work history
	handlers map[Stage][]StageHandler

	// inspected is set once intake inspection completes
	inspected bool

	// condition is the inspector's assessment note
	condition string
}

// NewGarment creates a garment of the given category with an empty work history.
func NewGarment(category GarmentType) (Garment, error) {
	if category == "" {
		return Garment{}, ErrCategoryIsRequired
	}

	return Garment{
		category: category,
		handlers: make(map[Stage][]StageHandler),
	}, nil
}

// RestoreGarment reconstructs a garment from persistence, including its full
// handler history.
func RestoreGarment(
	category GarmentType,
	handlers map[Stage][]StageHandler,
	inspected bool,
	condition string,
) (Garment, error) {
	if category == "" {
		return Garment{}, ErrCategoryIsRequired
	}
	if handlers == nil {
		handlers = make(map[Stage][]StageHandler)
	}

	return Garment{
		category:  category,
		handlers:  handlers,
		inspected: inspected,
		condition: condition,
	}, nil
}

// Category returns the garment's category.
func (g *Garment) Category() GarmentType {
	return g.category
}

// Inspected reports whether intake inspection has completed for this garment.
func (g *Garment) Inspected() bool {
	return g.inspected
}

// Condition returns the inspector's condition assessment.
func (g *Garment) Condition() string {
	return g.condition
}

// Handlers returns a copy of the handler entries for the given stage.
func (g *Garment) Handlers(stage Stage) []StageHandler {
	entries := g.handlers[stage]
	out := make([]StageHandler, len(entries))
	copy(out, entries)
	return out
}

// HandledStages returns the stages with at least one handler entry.
func (g *Garment) HandledStages() []Stage {
	stages := make([]Stage, 0, len(g.handlers))
	for _, stage := range Stages() {
		if len(g.handlers[stage]) > 0 {
			stages = append(stages, stage)
		}
	}
	return stages
}

// Duration returns the accumulated work duration for the given stage,
// summed across all handler entries.
func (g *Garment) Duration(stage Stage) time.Duration {
	var total time.Duration
	for _, entry := range g.handlers[stage] {
		total += entry.Worked
	}
	return total
}

// HandledBy reports whether the given staff member has any handler entry on
// this garment, at any stage.
func (g *Garment) HandledBy(staffID kernel.UUID) bool {
	for _, entries := range g.handlers {
		for _, entry := range entries {
			if entry.StaffID.IsEqual(staffID) {
				return true
			}
		}
	}
	return false
}

// recordWork appends a handler entry for the stage and accumulates its
// duration. Called through Order.RecordGarmentWork so the aggregate mediates
// all mutation.
func (g *Garment) recordWork(stage Stage, staffID kernel.UUID, completedAt time.Time, worked time.Duration) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	if err := staffID.Validate(); err != nil {
		return err
	}
	if worked < 0 {
		return ErrDurationIsInvalid
	}

	g.handlers[stage] = append(g.handlers[stage], StageHandler{
		StaffID:     staffID,
		CompletedAt: completedAt,
		Worked:      worked,
	})
	return nil
}

// completeInspection marks the garment inspected with a condition note.
// Re-inspection updates the note but never clears the flag.
func (g *Garment) completeInspection(condition string) {
	g.inspected = true
	g.condition = condition
}
