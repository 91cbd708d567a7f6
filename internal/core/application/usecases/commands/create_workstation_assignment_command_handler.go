package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/staff"
	"laundryops/internal/pkg/errs"
)

// CreateWorkstationAssignmentCommandHandler registers a workstation
// assignment. Creation is idempotent on (staff, stage, branch): if an active
// binding already exists, the command succeeds without writing a duplicate.
// A deactivated binding is reactivated as a fresh record.
type CreateWorkstationAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCreateWorkstationAssignmentCommandHandler creates a handler for
// assignment registration.
func NewCreateWorkstationAssignmentCommandHandler(uowFactory AssignmentUoWFactory) CreateWorkstationAssignmentCommandHandler {
	return CreateWorkstationAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h CreateWorkstationAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateWorkstationAssignmentCommand) error {
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

	existing, err := repo.Find(ctx, cmd.StaffID(), cmd.Stage(), cmd.BranchID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil && existing.Active() {
		return uow.Commit(ctx)
	}

	assignment, err := staff.NewAssignment(
		cmd.AssignmentID(),
		cmd.StaffID(),
		cmd.DisplayName(),
		cmd.Stage(),
		cmd.BranchID(),
		cmd.CreatedBy(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
