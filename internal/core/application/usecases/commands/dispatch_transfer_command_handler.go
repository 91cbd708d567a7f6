package commands

import (
	"context"
)

// DispatchTransferCommandHandler moves a pending order into transit.
// Duplicate dispatch requests are no-ops, not errors.
type DispatchTransferCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDispatchTransferCommandHandler creates a handler for transfer dispatch.
func NewDispatchTransferCommandHandler(uowFactory OrderUoWFactory) DispatchTransferCommandHandler {
	return DispatchTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
func (h DispatchTransferCommandHandler) Handle(ctx context.Context, cmd DispatchTransferCommand) error {
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

	if err = o.DispatchTransfer(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
