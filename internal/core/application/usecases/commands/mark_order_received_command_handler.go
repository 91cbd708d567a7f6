package commands

import (
	"context"
	"time"
)

// MarkOrderReceivedCommandHandler records transfer arrival: routing moves to
// "received" with the arrival timestamp, and the customer-facing status
// advances to inspection. Duplicate receipt notices are no-ops.
type MarkOrderReceivedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReceivedCommandHandler creates a handler for transfer receipt.
func NewMarkOrderReceivedCommandHandler(uowFactory OrderUoWFactory) MarkOrderReceivedCommandHandler {
	return MarkOrderReceivedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt command.
func (h MarkOrderReceivedCommandHandler) Handle(ctx context.Context, cmd MarkOrderReceivedCommand) error {
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

	if err = o.MarkReceived(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
