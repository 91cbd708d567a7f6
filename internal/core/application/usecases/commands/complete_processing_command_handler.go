package commands

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
)

// CompleteProcessingCommandResponse reports the sorting outcome of a
// completed order.
type CompleteProcessingCommandResponse struct {
	EarliestDeliveryAt time.Time
}

// CompleteProcessingCommandHandler marks an order ready for return and
// computes its earliest delivery time from the processing branch's sorting
// window. The window is anchored at completion time, so a repeated
// completion restarts it.
type CompleteProcessingCommandHandler struct {
	uowFactory UoWFactory
	calculator services.SortingWindowCalculator
}

// NewCompleteProcessingCommandHandler creates a handler for processing completion.
func NewCompleteProcessingCommandHandler(uowFactory UoWFactory) CompleteProcessingCommandHandler {
	return CompleteProcessingCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewSortingWindowCalculator(),
	}
}

// Handle processes the completion command.
func (h CompleteProcessingCommandHandler) Handle(
	ctx context.Context, cmd CompleteProcessingCommand,
) (CompleteProcessingCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteProcessingCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteProcessingCommandResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CompleteProcessingCommandResponse{}, err
	}

	processingBranchID := o.ProcessingBranchID()
	if processingBranchID == nil {
		return CompleteProcessingCommandResponse{}, order.ErrNotRouted
	}

	b, err := uow.BranchRepository().Get(ctx, *processingBranchID)
	if err != nil {
		return CompleteProcessingCommandResponse{}, err
	}

	now := time.Now()
	earliest := h.calculator.EarliestDelivery(b.SortingWindowHours(), now)

	if err = o.CompleteProcessing(earliest, now); err != nil {
		return CompleteProcessingCommandResponse{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return CompleteProcessingCommandResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteProcessingCommandResponse{}, err
	}

	return CompleteProcessingCommandResponse{EarliestDeliveryAt: earliest}, nil
}
