package order

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Status is the customer-facing order status. It is coarser than RoutingStatus
// and is what intake staff and customers see. The aggregate keeps the two in
// sync: a routing status of assigned or processing implies the order has
// progressed past intake, and ready-for-return implies queued for delivery.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusReceived is the initial status at intake, before routing begins
	// or while the order is on its way to the processing branch.
	StatusReceived

	// StatusInspection marks the order in production at its processing branch.
	StatusInspection

	// StatusQueuedForDelivery marks production complete; the order awaits
	// delivery scheduling subject to its sorting window.
	StatusQueuedForDelivery
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "unknown",
		StatusReceived:          "received",
		StatusInspection:        "inspection",
		StatusQueuedForDelivery: "queued_for_delivery",
	}
}

// Validate checks that the Status holds one of the defined states.
func (s Status) Validate() error {
	if s != StatusReceived && s != StatusInspection && s != StatusQueuedForDelivery {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for undefined
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
