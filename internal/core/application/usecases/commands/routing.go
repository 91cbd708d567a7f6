package commands

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/core/ports"
)

// autoAssignStage runs the load-balanced staff pick for one stage at a branch
// and applies it to the order. Counting and assignment happen inside the
// caller's transaction, which narrows (but does not eliminate) the window in
// which two concurrent callers can pick the same least-loaded staff member.
//
// A nil staff result is a normal outcome: the order stays assigned to the
// stage without staff, awaiting manual pickup.
func autoAssignStage(
	ctx context.Context,
	orders ports.OrderRepository,
	assignments ports.AssignmentRepository,
	o *order.Order,
	branchID kernel.UUID,
	stage order.Stage,
) (*kernel.UUID, error) {
	candidates, err := assignments.GetActiveForBranchStage(ctx, branchID, stage)
	if err != nil {
		return nil, err
	}

	counts := make(map[kernel.UUID]int, len(candidates))
	for _, candidate := range candidates {
		count, countErr := orders.CountOpenByStaff(ctx, candidate.StaffID())
		if countErr != nil {
			return nil, countErr
		}
		counts[candidate.StaffID()] = count
	}

	staffID := services.NewWorkstationBalancer().Select(stage, candidates, counts)

	if err = o.AssignStage(stage, staffID); err != nil {
		return nil, err
	}

	return staffID, nil
}
