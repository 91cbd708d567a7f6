package commands

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
)

// AutoAssignWorkstationCommandResponse reports the assignment outcome.
// StaffID is nil when no eligible staff member was available: the order
// stays queued at the stage.
type AutoAssignWorkstationCommandResponse struct {
	Stage   order.Stage
	StaffID *kernel.UUID
}

// AutoAssignWorkstationCommandHandler picks the least-loaded active staff
// member for the stage at the order's processing branch and assigns the
// order to them.
type AutoAssignWorkstationCommandHandler struct {
	uowFactory UoWFactory
}

// NewAutoAssignWorkstationCommandHandler creates a handler for balanced assignment.
func NewAutoAssignWorkstationCommandHandler(uowFactory UoWFactory) AutoAssignWorkstationCommandHandler {
	return AutoAssignWorkstationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the auto-assignment command.
func (h AutoAssignWorkstationCommandHandler) Handle(
	ctx context.Context, cmd AutoAssignWorkstationCommand,
) (AutoAssignWorkstationCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AutoAssignWorkstationCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AutoAssignWorkstationCommandResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AutoAssignWorkstationCommandResponse{}, err
	}

	processingBranchID := o.ProcessingBranchID()
	if processingBranchID == nil {
		return AutoAssignWorkstationCommandResponse{}, order.ErrNotRouted
	}

	staffID, err := autoAssignStage(ctx, orderRepo, uow.AssignmentRepository(), o, *processingBranchID, cmd.Stage())
	if err != nil {
		return AutoAssignWorkstationCommandResponse{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AutoAssignWorkstationCommandResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AutoAssignWorkstationCommandResponse{}, err
	}

	return AutoAssignWorkstationCommandResponse{Stage: cmd.Stage(), StaffID: staffID}, nil
}
