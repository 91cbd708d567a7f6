package order

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// RoutingStatus represents the order's position in the inter-branch and
// workstation state machine. It is distinct from the customer-facing Status;
// the Order aggregate advances the two together so they cannot drift.
//
// State transitions:
//
//	(routed, no transfer) ──────────────> Assigned ──> Processing ──> ReadyForReturn
//	                                         ^  │
//	(routed, transfer) ──> Pending ──>       │  │ (next stage)
//	       InTransit ──> Received ───────────┴──┘
//
// ReadyForReturn is terminal for routing purposes: the order is handed to the
// delivery subsystem, which this state machine does not model.
type RoutingStatus int

const (
	// RoutingUnknown represents an invalid or undefined routing status.
	// This value (0) also covers orders created but not yet routed.
	RoutingUnknown RoutingStatus = iota

	// RoutingPending marks an order awaiting physical transfer to its
	// processing branch. Only reachable when origin differs from processing.
	RoutingPending

	// RoutingInTransit marks an order on a transfer vehicle between branches.
	RoutingInTransit

	// RoutingReceived marks a transferred order that has arrived at its
	// processing branch and awaits workstation assignment.
	RoutingReceived

	// RoutingAssigned marks an order bound to a production stage,
	// with or without a specific staff member.
	RoutingAssigned

	// RoutingProcessing marks an order actively being worked at its stage.
	RoutingProcessing

	// RoutingReadyForReturn marks production complete; the order is queued
	// for delivery scheduling. Terminal for this state machine.
	RoutingReadyForReturn
)

func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		RoutingUnknown:        "unknown",
		RoutingPending:        "pending",
		RoutingInTransit:      "in_transit",
		RoutingReceived:       "received",
		RoutingAssigned:       "assigned",
		RoutingProcessing:     "processing",
		RoutingReadyForReturn: "ready_for_return",
	}
}

func getValidRoutingStatusStrings() map[RoutingStatus]string {
	//nolint:exhaustive // RoutingUnknown is intentionally excluded as it's invalid
	return map[RoutingStatus]string{
		RoutingPending:        "pending",
		RoutingInTransit:      "in_transit",
		RoutingReceived:       "received",
		RoutingAssigned:       "assigned",
		RoutingProcessing:     "processing",
		RoutingReadyForReturn: "ready_for_return",
	}
}

// Validate checks that the RoutingStatus holds one of the defined states.
// Used when reconstructing orders from persistence.
func (s RoutingStatus) Validate() error {
	if _, ok := getValidRoutingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("routing status", fmt.Errorf("%d is not a valid routing status", s))
	}
	return nil
}

// String returns the wire name of the routing status, or "unknown" for
// undefined values. Implements fmt.Stringer.
func (s RoutingStatus) String() string {
	if str, ok := getRoutingStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpen reports whether the order counts toward a staff member's current
// workload. Open orders are those assigned to a stage or actively processing;
// the workstation balancer uses this definition when counting load.
func (s RoutingStatus) IsOpen() bool {
	return s == RoutingAssigned || s == RoutingProcessing
}

// Dispatch transitions Pending to InTransit when a transfer vehicle departs.
func (s RoutingStatus) Dispatch() (RoutingStatus, error) {
	if s != RoutingPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"routing status",
			fmt.Errorf("%s is not a valid status to dispatch a transfer from", s.String()),
		)
	}
	return RoutingInTransit, nil
}

// Receive transitions InTransit to Received when the order physically arrives
// at its processing branch.
func (s RoutingStatus) Receive() (RoutingStatus, error) {
	if s != RoutingInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"routing status",
			fmt.Errorf("%s is not a valid status to receive from", s.String()),
		)
	}
	return RoutingReceived, nil
}

// AssignStage transitions to Assigned. Valid from Received (first assignment
// after transfer), Assigned (reassignment) and Processing (advance to the
// next stage after the current one completes).
func (s RoutingStatus) AssignStage() (RoutingStatus, error) {
	if s != RoutingReceived && s != RoutingAssigned && s != RoutingProcessing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"routing status",
			fmt.Errorf("%s is not a valid status to assign a stage from", s.String()),
		)
	}
	return RoutingAssigned, nil
}

// StartProcessing transitions Assigned to Processing when a staff member
// picks the order up at their workstation.
func (s RoutingStatus) StartProcessing() (RoutingStatus, error) {
	if s != RoutingAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"routing status",
			fmt.Errorf("%s is not a valid status to start processing from", s.String()),
		)
	}
	return RoutingProcessing, nil
}

// CompleteProcessing transitions Processing to ReadyForReturn once the final
// production stage finishes.
func (s RoutingStatus) CompleteProcessing() (RoutingStatus, error) {
	if s != RoutingProcessing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"routing status",
			fmt.Errorf("%s is not a valid status to complete processing from", s.String()),
		)
	}
	return RoutingReadyForReturn, nil
}
