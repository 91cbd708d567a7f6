package commands

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order intake. The new order is persisted
// and routed in one transaction: the origin branch decides the processing
// branch, and same-branch orders are staffed at inspection via the balancer.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command. Returns a not-found error when the
// origin branch does not exist; nothing is persisted in that case.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	origin, err := uow.BranchRepository().Get(ctx, cmd.OriginBranchID())
	if err != nil {
		return err
	}

	garments := make([]order.Garment, 0, len(cmd.Categories()))
	for _, category := range cmd.Categories() {
		g, gErr := order.NewGarment(category)
		if gErr != nil {
			return gErr
		}
		garments = append(garments, g)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.OriginBranchID(), garments, cmd.TotalValue())
	if err != nil {
		return err
	}

	processingBranchID := origin.ProcessingBranchID()
	if err = o.RouteTo(processingBranchID, time.Now()); err != nil {
		return err
	}

	if o.RoutingStatus() == order.RoutingAssigned {
		orderRepo := uow.OrderRepository()
		if _, err = autoAssignStage(ctx, orderRepo, uow.AssignmentRepository(),
			o, processingBranchID, order.StageInspection); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
