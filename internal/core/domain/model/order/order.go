package order

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// Domain errors for order routing operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrGarmentsAreRequired is returned when creating an order with no garments.
	ErrGarmentsAreRequired = errs.NewValueIsRequiredError("garments")
	// ErrAlreadyRouted is returned when routing an order to a second, different
	// processing branch. Re-routing to the same branch is a no-op, not an error.
	ErrAlreadyRouted = errors.New("order is already routed to a different processing branch")
	// ErrNotRouted is returned by transitions that require routing to have begun.
	ErrNotRouted = errors.New("order has not been routed to a processing branch")
	// ErrOverrideNotPermitted is returned when the acting user lacks the
	// classification-override capability.
	ErrOverrideNotPermitted = errors.New("classification override requires manager capability")
	// ErrSameClassification is returned when an override proposes the
	// classification already in effect.
	ErrSameClassification = errors.New("override must propose a different classification")
	// ErrJustificationTooShort is returned when an override justification is
	// below the minimum length.
	ErrJustificationTooShort = errs.NewValueIsOutOfRangeError(
		"justification length", "too short", MinOverrideJustificationLen, "unbounded")
	// ErrOrderNotClassified is returned when overriding before any
	// classification has been recorded.
	ErrOrderNotClassified = errors.New("order has no classification to override")
)

// Order is the aggregate root for the routing and workstation state of one
// unit of work. It owns its garments and its classification audit trail, and
// it is the only place routing status and customer-facing status are mutated:
// every transition advances both together, so they cannot drift out of sync.
//
// Invariants:
//   - processingBranchID is set from the first routing transition onward.
//   - routingStatus and stage only change through the transition methods, and
//     always to a state reachable in the RoutingStatus state machine.
//   - garments and overrides are append-only.
//   - version increases monotonically; persistence adapters use it for
//     compare-and-swap writes, so concurrent writers cannot lose updates.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// originBranchID is the branch where the order was taken in
	originBranchID kernel.UUID

	// processingBranchID is the branch responsible for production
	// (nil until routing begins; differs from origin for satellite intake)
	processingBranchID *kernel.UUID

	// garments are the owned line items, in intake order
	garments []Garment

	// status is the customer-facing order status
	status Status

	// routingStatus is the position in the routing state machine
	routingStatus RoutingStatus

	// stage is the assigned production stage (nil until assigned)
	stage *Stage

	// staffID is the assigned staff member (nil until picked)
	staffID *kernel.UUID

	// routedAt / arrivedAt / sortedAt are transition timestamps
	routedAt  *time.Time
	arrivedAt *time.Time
	sortedAt  *time.Time

	// earliestDeliveryAt is the computed sorting-window floor for scheduling
	earliestDeliveryAt *time.Time

	// totalValue is the order's monetary value in KES
	totalValue int64

	// classification is the effective delivery size class (nil until classified)
	classification *SizeClass

	// overrides is the append-only classification audit trail
	overrides []ClassificationOverride

	// version backs compare-and-swap persistence writes
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order at intake: customer-facing status "received",
// routing not yet begun. Routing starts with RouteTo, normally invoked
// immediately after creation.
func NewOrder(id kernel.UUID, originBranchID kernel.UUID, garments []Garment, totalValue int64) (*Order, error) {
	o := &Order{
		status:        StatusReceived,
		routingStatus: RoutingUnknown,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOriginBranch(originBranchID),
		o.setGarments(garments),
		o.setTotalValue(totalValue),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full routing
// state, classification history, and version.
func RestoreOrder(
	id kernel.UUID,
	originBranchID kernel.UUID,
	processingBranchID *kernel.UUID,
	garments []Garment,
	status Status,
	routingStatus RoutingStatus,
	stage *Stage,
	staffID *kernel.UUID,
	routedAt, arrivedAt, sortedAt, earliestDeliveryAt *time.Time,
	totalValue int64,
	classification *SizeClass,
	overrides []ClassificationOverride,
	version int64,
) (*Order, error) {
	o := &Order{
		status:             status,
		routingStatus:      routingStatus,
		stage:              stage,
		staffID:            staffID,
		routedAt:           routedAt,
		arrivedAt:          arrivedAt,
		sortedAt:           sortedAt,
		earliestDeliveryAt: earliestDeliveryAt,
		classification:     classification,
		overrides:          overrides,
		version:            version,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOriginBranch(originBranchID),
		o.setGarments(garments),
		o.setTotalValue(totalValue),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	// RoutingUnknown is legal for orders persisted before their first routing
	// transition; anything else must be a defined state.
	if routingStatus != RoutingUnknown {
		if err := routingStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if processingBranchID != nil {
		if err := processingBranchID.Validate(); err != nil {
			return nil, err
		}
		o.processingBranchID = processingBranchID
	}
	if stage != nil {
		if err := stage.Validate(); err != nil {
			return nil, err
		}
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OriginBranchID returns the branch where the order was taken in.
func (o *Order) OriginBranchID() kernel.UUID {
	return o.originBranchID
}

// ProcessingBranchID returns the branch responsible for production,
// or nil if routing has not begun.
func (o *Order) ProcessingBranchID() *kernel.UUID {
	return o.processingBranchID
}

// Status returns the customer-facing status.
func (o *Order) Status() Status {
	return o.status
}

// RoutingStatus returns the order's position in the routing state machine.
func (o *Order) RoutingStatus() RoutingStatus {
	return o.routingStatus
}

// Stage returns the assigned production stage, or nil before assignment.
func (o *Order) Stage() *Stage {
	return o.stage
}

// StaffID returns the assigned staff member, or nil if none is bound.
func (o *Order) StaffID() *kernel.UUID {
	return o.staffID
}

// RoutedAt returns when routing began.
func (o *Order) RoutedAt() *time.Time {
	return o.routedAt
}

// ArrivedAt returns when a transferred order reached its processing branch.
func (o *Order) ArrivedAt() *time.Time {
	return o.arrivedAt
}

// SortedAt returns when sorting (production) completed.
func (o *Order) SortedAt() *time.Time {
	return o.sortedAt
}

// EarliestDeliveryAt returns the sorting-window floor for delivery scheduling.
func (o *Order) EarliestDeliveryAt() *time.Time {
	return o.earliestDeliveryAt
}

// TotalValue returns the order's monetary value in KES.
func (o *Order) TotalValue() int64 {
	return o.totalValue
}

// Garments returns the order's garments in intake order.
func (o *Order) Garments() []Garment {
	out := make([]Garment, len(o.garments))
	copy(out, o.garments)
	return out
}

// GarmentCount returns the number of garments in the order.
func (o *Order) GarmentCount() int {
	return len(o.garments)
}

// Classification returns the effective delivery size class, or nil if the
// order has not been classified.
func (o *Order) Classification() *SizeClass {
	return o.classification
}

// Overrides returns the append-only classification audit trail, oldest first.
func (o *Order) Overrides() []ClassificationOverride {
	out := make([]ClassificationOverride, len(o.overrides))
	copy(out, o.overrides)
	return out
}

// Version returns the aggregate version used for compare-and-swap writes.
func (o *Order) Version() int64 {
	return o.version
}

// RouteTo performs the initial routing transition. When the processing branch
// equals the origin, the order is assigned straight to the inspection stage
// and the customer-facing status advances past intake; otherwise it waits in
// pending for a physical transfer. Re-routing to the same branch is a no-op.
func (o *Order) RouteTo(processingBranchID kernel.UUID, now time.Time) error {
	if err := processingBranchID.Validate(); err != nil {
		return err
	}

	if o.processingBranchID != nil {
		if o.processingBranchID.IsEqual(processingBranchID) {
			return nil
		}
		return ErrAlreadyRouted
	}

	o.processingBranchID = &processingBranchID
	o.routedAt = &now

	if processingBranchID.IsEqual(o.originBranchID) {
		o.routingStatus = RoutingAssigned
		stage := StageInspection
		o.stage = &stage
		if o.status == StatusReceived {
			o.status = StatusInspection
		}
		return nil
	}

	o.routingStatus = RoutingPending
	return nil
}

// DispatchTransfer marks the order loaded onto a transfer vehicle.
// Dispatching an order already in transit is a no-op.
func (o *Order) DispatchTransfer() error {
	if o.routingStatus == RoutingInTransit {
		return nil
	}

	next, err := o.routingStatus.Dispatch()
	if err != nil {
		return err
	}

	o.routingStatus = next
	return nil
}

// MarkReceived records the physical arrival of a transferred order at its
// processing branch and advances the customer-facing status to inspection.
// Marking an already-received order is a no-op.
func (o *Order) MarkReceived(now time.Time) error {
	if o.routingStatus == RoutingReceived {
		return nil
	}

	next, err := o.routingStatus.Receive()
	if err != nil {
		return err
	}

	o.routingStatus = next
	o.arrivedAt = &now
	o.status = StatusInspection
	return nil
}

// AssignStage binds the order to a production stage, optionally with a staff
// member. Re-requesting the currently active stage for the same staff is a
// no-op, so duplicate triggers (retries, repeated webhooks) are harmless.
func (o *Order) AssignStage(stage Stage, staffID *kernel.UUID) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}

	active := o.routingStatus == RoutingAssigned || o.routingStatus == RoutingProcessing
	if active && o.stage != nil && *o.stage == stage && sameStaff(o.staffID, staffID) {
		return nil
	}

	next, err := o.routingStatus.AssignStage()
	if err != nil {
		return err
	}

	o.routingStatus = next
	o.stage = &stage
	o.staffID = staffID
	if o.status == StatusReceived {
		o.status = StatusInspection
	}
	return nil
}

// StartProcessing moves an assigned order into active processing, binding the
// staff member doing the work. Restarting with the same staff is a no-op.
func (o *Order) StartProcessing(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	if o.routingStatus == RoutingProcessing && o.staffID != nil && o.staffID.IsEqual(staffID) {
		return nil
	}

	next, err := o.routingStatus.StartProcessing()
	if err != nil {
		return err
	}

	o.routingStatus = next
	o.staffID = &staffID
	return nil
}

// CompleteProcessing finishes production: routing moves to ready-for-return,
// the customer-facing status to queued-for-delivery, and the earliest delivery
// time is stored. Completing an already-completed order restarts the sorting
// window: the new earliest time supersedes the stored one.
func (o *Order) CompleteProcessing(earliestDelivery, now time.Time) error {
	if o.routingStatus == RoutingReadyForReturn {
		o.earliestDeliveryAt = &earliestDelivery
		o.sortedAt = &now
		return nil
	}

	next, err := o.routingStatus.CompleteProcessing()
	if err != nil {
		return err
	}

	o.routingStatus = next
	o.status = StatusQueuedForDelivery
	o.earliestDeliveryAt = &earliestDelivery
	o.sortedAt = &now
	return nil
}

// RecordGarmentWork appends a stage-handler entry to the garment at the given
// index and accumulates the worked duration for that stage.
func (o *Order) RecordGarmentWork(index int, stage Stage, staffID kernel.UUID, completedAt time.Time, worked time.Duration) error {
	if index < 0 || index >= len(o.garments) {
		return errs.NewValueIsOutOfRangeError("garment index", index, 0, len(o.garments)-1)
	}
	return o.garments[index].recordWork(stage, staffID, completedAt, worked)
}

// CompleteGarmentInspection marks the garment at the given index inspected
// with the inspector's condition assessment.
func (o *Order) CompleteGarmentInspection(index int, condition string) error {
	if index < 0 || index >= len(o.garments) {
		return errs.NewValueIsOutOfRangeError("garment index", index, 0, len(o.garments)-1)
	}
	o.garments[index].completeInspection(condition)
	return nil
}

// RecordClassification stores the automatic classification result as the
// effective class. The first recorded classification wins; later automatic
// results never displace an effective class (which may be an override).
func (o *Order) RecordClassification(class SizeClass) error {
	if err := class.Validate(); err != nil {
		return err
	}
	if o.classification != nil {
		return nil
	}
	o.classification = &class
	return nil
}

// OverrideClassification applies a manual reclassification. All checks fail
// closed: no audit record is written and the effective class is untouched
// unless every check passes. A valid override appends exactly one audit
// record; prior records are never modified.
func (o *Order) OverrideClassification(
	target SizeClass,
	actorID kernel.UUID,
	justification string,
	mayOverride bool,
	now time.Time,
) error {
	if !mayOverride {
		return ErrOverrideNotPermitted
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.classification == nil {
		return ErrOrderNotClassified
	}
	if *o.classification == target {
		return ErrSameClassification
	}
	if len(justification) < MinOverrideJustificationLen {
		return ErrJustificationTooShort
	}

	o.overrides = append(o.overrides, ClassificationOverride{
		from:          *o.classification,
		to:            target,
		actorID:       actorID,
		justification: justification,
		at:            now,
	})
	o.classification = &target
	return nil
}

func sameStaff(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOriginBranch(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	o.originBranchID = branchID
	return nil
}

func (o *Order) setGarments(garments []Garment) error {
	if len(garments) == 0 {
		return ErrGarmentsAreRequired
	}
	o.garments = garments
	return nil
}

func (o *Order) setTotalValue(totalValue int64) error {
	if totalValue < 0 {
		return errs.NewValueIsOutOfRangeError("total value", totalValue, 0, "unbounded")
	}
	o.totalValue = totalValue
	return nil
}
