package order

import (
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// MinOverrideJustificationLen is the minimum length of the free-text
// justification a manager must supply when overriding a classification.
const MinOverrideJustificationLen = 10

// SizeClass is the delivery size classification used for vehicle dispatch.
type SizeClass string

const (
	// SizeSmall marks an order that fits motorcycle delivery.
	SizeSmall SizeClass = "Small"
	// SizeBulk marks an order that requires a van.
	SizeBulk SizeClass = "Bulk"
)

// Validate checks that the size class is one of the defined classes.
func (c SizeClass) Validate() error {
	if c != SizeSmall && c != SizeBulk {
		return errs.NewValueIsInvalidErrorWithCause("size class", fmt.Errorf("%q is not a size class", string(c)))
	}
	return nil
}

// ClassificationBasis names the rule that decided a classification.
type ClassificationBasis string

const (
	// BasisValue means the order's monetary value exceeded its ceiling.
	BasisValue ClassificationBasis = "value"
	// BasisWeight means the estimated garment weight exceeded its ceiling.
	BasisWeight ClassificationBasis = "weight"
	// BasisGarmentCount means the garment count decided the outcome. It is
	// also reported for Small results by convention, as the catch-all rule.
	BasisGarmentCount ClassificationBasis = "garment_count"
)

// ClassificationOverride is an append-only audit record of a manual
// reclassification. Records are created only through
// Order.OverrideClassification and are never mutated or deleted.
type ClassificationOverride struct {
	from          SizeClass
	to            SizeClass
	actorID       kernel.UUID
	justification string
	at            time.Time
}

// RestoreClassificationOverride reconstructs an audit record from persistence.
func RestoreClassificationOverride(
	from, to SizeClass,
	actorID kernel.UUID,
	justification string,
	at time.Time,
) ClassificationOverride {
	return ClassificationOverride{
		from:          from,
		to:            to,
		actorID:       actorID,
		justification: justification,
		at:            at,
	}
}

// From returns the classification in effect before the override.
func (o ClassificationOverride) From() SizeClass {
	return o.from
}

// To returns the classification the override put in effect.
func (o ClassificationOverride) To() SizeClass {
	return o.to
}

// ActorID returns the manager who applied the override.
func (o ClassificationOverride) ActorID() kernel.UUID {
	return o.actorID
}

// Justification returns the free-text reason supplied with the override.
func (o ClassificationOverride) Justification() string {
	return o.justification
}

// At returns when the override was applied.
func (o ClassificationOverride) At() time.Time {
	return o.at
}
