package commands

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
)

// ErrNoReceivedOrdersFound indicates the received queue is empty. Callers
// running on a schedule treat this as a normal idle tick.
var ErrNoReceivedOrdersFound = errors.New("no orders in received status")

// AssignReceivedOrderCommandHandler drains the received queue one order at a
// time: the oldest received order moves to the inspection stage, staffed by
// the least-loaded inspector when one is available.
//
// Example:
//
//	handler := NewAssignReceivedOrderCommandHandler(uowFactory)
//	cmd, _ := NewAssignReceivedOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoReceivedOrdersFound):
//	    log.Println("Received queue empty")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignReceivedOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignReceivedOrderCommandHandler creates a handler for the received-queue sweep.
func NewAssignReceivedOrderCommandHandler(uowFactory UoWFactory) AssignReceivedOrderCommandHandler {
	return AssignReceivedOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the next received order, if any. Returns
// ErrNoReceivedOrdersFound when the queue is empty.
func (h AssignReceivedOrderCommandHandler) Handle(ctx context.Context, cmd AssignReceivedOrderCommand) error {
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
	o, err := orderRepo.GetFirstInReceivedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoReceivedOrdersFound
	}
	if err != nil {
		return err
	}

	processingBranchID := o.ProcessingBranchID()
	if processingBranchID == nil {
		return order.ErrNotRouted
	}

	if _, err = autoAssignStage(ctx, orderRepo, uow.AssignmentRepository(), o, *processingBranchID, order.StageInspection); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
