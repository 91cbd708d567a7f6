// Package order provides the Order aggregate and its routing state machine,
// the core of the multi-branch routing and workstation assignment engine.
//
// The package includes:
//   - Order: the aggregate root owning routing state, garments, and the
//     classification audit trail
//   - RoutingStatus: the inter-branch/workstation state machine
//   - Status: the customer-facing order status, advanced in lockstep with
//     routing transitions
//   - Stage: the production pipeline steps (inspection through packaging)
//   - Garment: owned line items with append-only per-stage work history
//   - SizeClass / ClassificationOverride: delivery classification and its
//     append-only override audit records
//
// Key business rules:
//   - Routing begins at order creation: same-branch orders are assigned to
//     inspection immediately, satellite intake waits for a physical transfer.
//   - Routing status and customer-facing status always advance together
//     through the Order's transition methods.
//   - Transitions are idempotent where duplicate triggering is expected
//     (re-assignment to the active stage, repeated receipt notices).
//   - Completing processing stores the earliest delivery time; re-completing
//     restarts the sorting window from the new completion instant.
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
