package commands

import (
	"context"
)

// AssignWorkstationCommandHandler performs an explicit manual assignment of
// an order to a stage and, optionally, a staff member. Re-assigning to the
// same stage and staff is a no-op.
type AssignWorkstationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignWorkstationCommandHandler creates a handler for manual assignment.
func NewAssignWorkstationCommandHandler(uowFactory OrderUoWFactory) AssignWorkstationCommandHandler {
	return AssignWorkstationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignWorkstationCommandHandler) Handle(ctx context.Context, cmd AssignWorkstationCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignStage(cmd.Stage(), cmd.StaffID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
