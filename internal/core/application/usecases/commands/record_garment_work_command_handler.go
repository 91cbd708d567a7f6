package commands

import (
	"context"
)

// RecordGarmentWorkCommandHandler appends a stage work record to one garment
// of an order. The garment's per-stage duration totals feed the staff
// performance reports.
type RecordGarmentWorkCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordGarmentWorkCommandHandler creates a handler for garment work logging.
func NewRecordGarmentWorkCommandHandler(uowFactory OrderUoWFactory) RecordGarmentWorkCommandHandler {
	return RecordGarmentWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the work record command.
func (h RecordGarmentWorkCommandHandler) Handle(ctx context.Context, cmd RecordGarmentWorkCommand) error {
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

	if err = o.RecordGarmentWork(cmd.GarmentIndex(), cmd.Stage(), cmd.StaffID(), cmd.CompletedAt(), cmd.Worked()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
