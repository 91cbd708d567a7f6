// Package services provides pure domain services for the routing and
// workstation assignment engine. It implements decision logic that doesn't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - WorkstationBalancer: selects the least-loaded staff member for a stage
//   - SortingWindowCalculator: computes and validates earliest delivery times
//   - DeliveryClassifier: classifies orders for vehicle dispatch
//
// All three services are stateless and side-effect free: they decide, and the
// application layer persists. This keeps the decision rules trivially testable
// and the concurrency story in one place (the command handlers).
package services
