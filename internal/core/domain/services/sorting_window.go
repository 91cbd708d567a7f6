package services

import (
	"fmt"
	"time"
)

// ScheduleRejectedError is the structured rejection returned when a proposed
// delivery time falls inside the sorting window. It carries the earliest
// permissible time so callers can correct the schedule instead of guessing.
type ScheduleRejectedError struct {
	Proposed     time.Time
	EarliestTime time.Time
}

func (e *ScheduleRejectedError) Error() string {
	return fmt.Sprintf("proposed delivery %s precedes earliest permissible time %s",
		e.Proposed.Format(time.RFC3339), e.EarliestTime.Format(time.RFC3339))
}

// SortingWindowCalculator computes the earliest timestamp at which an order
// may be scheduled for delivery, enforcing the branch-configured minimum
// dwell time after processing. It is pure; callers pass the window hours
// (already defaulted by the Branch entity) and a baseline instant.
//
// The baseline is the order's branch-arrival timestamp when available, or
// the current instant otherwise. Completing sorting always restarts the
// window from the completion instant, superseding any stored value.
type SortingWindowCalculator struct{}

// NewSortingWindowCalculator creates a new SortingWindowCalculator instance.
func NewSortingWindowCalculator() SortingWindowCalculator {
	return SortingWindowCalculator{}
}

// EarliestDelivery returns baseline plus the sorting window.
func (c SortingWindowCalculator) EarliestDelivery(windowHours int, baseline time.Time) time.Time {
	return baseline.Add(time.Duration(windowHours) * time.Hour)
}

// Baseline picks the preferred baseline instant: the order's actual arrival
// timestamp when present, the current instant otherwise.
func (c SortingWindowCalculator) Baseline(arrivedAt *time.Time, now time.Time) time.Time {
	if arrivedAt != nil {
		return *arrivedAt
	}
	return now
}

// ValidateSchedule rejects a proposed delivery time that precedes the
// earliest permissible time. The rejection carries the corrective value; a
// nil return means the proposal is acceptable. Nothing is mutated either way.
func (c SortingWindowCalculator) ValidateSchedule(proposed, earliest time.Time) error {
	if proposed.Before(earliest) {
		return &ScheduleRejectedError{Proposed: proposed, EarliestTime: earliest}
	}
	return nil
}
