package services

import (
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/staff"
)

// WorkstationBalancer is a domain service that selects the least-loaded staff
// member for a production stage. It is pure: the caller supplies the active
// assignments for the branch and a snapshot of open-order counts per staff
// member, and the balancer only chooses.
//
// Rules:
//   - Only active assignments whose permanent stage matches are eligible.
//   - The candidate with the fewest open orders wins.
//   - Ties break in favor of the first-seen candidate, so selection is
//     stable across repeated calls against the same snapshot.
//   - An empty candidate set yields no selection: the order stays assigned
//     to the stage without staff, awaiting manual pickup. Not an error.
//
// Example usage:
//
//	balancer := NewWorkstationBalancer()
//	staffID := balancer.Select(order.StageWashing, assignments, counts)
//	if staffID == nil {
//	    // no eligible staff at this stage; leave the order unassigned
//	}
type WorkstationBalancer struct{}

// NewWorkstationBalancer creates a new WorkstationBalancer instance.
func NewWorkstationBalancer() WorkstationBalancer {
	return WorkstationBalancer{}
}

// Select returns the staff member with the fewest open orders among active
// assignments matching the stage, or nil when no staff is eligible. Staff
// missing from the counts snapshot are treated as having zero open orders.
func (b WorkstationBalancer) Select(
	stage order.Stage,
	assignments []*staff.Assignment,
	openCounts map[kernel.UUID]int,
) *kernel.UUID {
	var (
		best      *kernel.UUID
		bestCount int
	)

	for _, a := range assignments {
		if a == nil || !a.Active() || a.Stage() != stage {
			continue
		}

		count := openCounts[a.StaffID()]
		if best == nil || count < bestCount {
			id := a.StaffID()
			best = &id
			bestCount = count
		}
	}

	return best
}
