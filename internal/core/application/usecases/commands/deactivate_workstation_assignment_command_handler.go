package commands

import (
	"context"
)

// DeactivateWorkstationAssignmentCommandHandler withdraws a workstation
// assignment. Deactivating an already inactive binding is a no-op.
type DeactivateWorkstationAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewDeactivateWorkstationAssignmentCommandHandler creates a handler for
// assignment withdrawal.
func NewDeactivateWorkstationAssignmentCommandHandler(uowFactory AssignmentUoWFactory) DeactivateWorkstationAssignmentCommandHandler {
	return DeactivateWorkstationAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command.
func (h DeactivateWorkstationAssignmentCommandHandler) Handle(ctx context.Context, cmd DeactivateWorkstationAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssignmentRepository()

	assignment, err := repo.Find(ctx, cmd.StaffID(), cmd.Stage(), cmd.BranchID())
	if err != nil {
		return err
	}

	if !assignment.Active() {
		return uow.Commit(ctx)
	}

	assignment.Deactivate()

	if err = repo.Update(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
