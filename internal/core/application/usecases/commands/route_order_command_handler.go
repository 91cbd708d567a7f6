package commands

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
)

// RouteOrderResponse carries the routing fields after the transition, for
// surfacing to the caller without a second read.
type RouteOrderResponse struct {
	ProcessingBranchID kernel.UUID
	RoutingStatus      order.RoutingStatus
	Stage              *order.Stage
	StaffID            *kernel.UUID
}

// RouteOrderCommandHandler orchestrates the initial routing transition:
// branch lookup, transfer detection, and immediate inspection staffing for
// same-branch orders.
type RouteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewRouteOrderCommandHandler creates a handler for routing operations.
func NewRouteOrderCommandHandler(uowFactory UoWFactory) RouteOrderCommandHandler {
	return RouteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle routes the order and returns the updated routing fields.
func (h RouteOrderCommandHandler) Handle(ctx context.Context, cmd RouteOrderCommand) (RouteOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return RouteOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RouteOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return RouteOrderResponse{}, err
	}

	origin, err := uow.BranchRepository().Get(ctx, o.OriginBranchID())
	if err != nil {
		return RouteOrderResponse{}, err
	}

	processingBranchID := origin.ProcessingBranchID()
	if err = o.RouteTo(processingBranchID, time.Now()); err != nil {
		return RouteOrderResponse{}, err
	}

	if o.RoutingStatus() == order.RoutingAssigned && o.StaffID() == nil {
		if _, err = autoAssignStage(ctx, orderRepo, uow.AssignmentRepository(),
			o, processingBranchID, order.StageInspection); err != nil {
			return RouteOrderResponse{}, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return RouteOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RouteOrderResponse{}, err
	}

	return RouteOrderResponse{
		ProcessingBranchID: processingBranchID,
		RoutingStatus:      o.RoutingStatus(),
		Stage:              o.Stage(),
		StaffID:            o.StaffID(),
	}, nil
}
