package order

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Stage identifies one step of the production pipeline an order moves through
// at its processing branch. Stages are also the unit of workstation staffing:
// each staff member holds a durable assignment to exactly one stage per branch.
type Stage string

const (
	StageInspection   Stage = "inspection"
	StageWashing      Stage = "washing"
	StageDrying       Stage = "drying"
	StageIroning      Stage = "ironing"
	StageQualityCheck Stage = "quality_check"
	StagePackaging    Stage = "packaging"
)

// Stages returns the production stages in pipeline order.
// StageInspection is always the entry stage for a newly routed order.
func Stages() []Stage {
	return []Stage{
		StageInspection,
		StageWashing,
		StageDrying,
		StageIroning,
		StageQualityCheck,
		StagePackaging,
	}
}

// Validate checks that the stage is one of the known production stages.
func (s Stage) Validate() error {
	for _, known := range Stages() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a production stage", string(s)))
}

// String returns the wire representation of the stage.
func (s Stage) String() string {
	return string(s)
}
