package commands

import (
	"context"

	"laundryops/internal/core/domain/model/branch"
)

// CreateBranchCommandHandler registers a branch of the chain.
type CreateBranchCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateBranchCommandHandler creates a handler for branch registration.
func NewCreateBranchCommandHandler(uowFactory UoWFactory) CreateBranchCommandHandler {
	return CreateBranchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the branch registration command.
func (h CreateBranchCommandHandler) Handle(ctx context.Context, cmd CreateBranchCommand) error {
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

	b, err := branch.NewBranch(cmd.BranchID(), cmd.Name(), cmd.Kind(), cmd.MainBranchID(), cmd.SortingWindowHours())
	if err != nil {
		return err
	}

	if cmd.MainBranchID() != nil {
		if _, err = uow.BranchRepository().Get(ctx, *cmd.MainBranchID()); err != nil {
			return err
		}
	}

	if err = uow.BranchRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
