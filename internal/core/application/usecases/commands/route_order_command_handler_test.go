package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func unroutedOrder(t *testing.T, orderID, originID kernel.UUID) *order.Order {
	t.Helper()
	g, err := order.NewGarment("Shirt")
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, originID, []order.Garment{g}, 500)
	require.NoError(t, err)
	return o
}

func TestRouteOrderCommandHandler_Handle_SameBranch(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	originID := kernel.NewUUID()
	staffID := kernel.NewUUID()
	cmd, _ := commands.NewRouteOrderCommand(orderID, kernel.NewUUID())
	o := unroutedOrder(t, orderID, originID)

	orderRepo := new(MockOrderRepository)
	branchRepo := new(MockBranchRepository)
	assignRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(o, nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("Get", ctx, originID).Return(mainBranch(t, originID), nil).Once(),
		uow.On("AssignmentRepository").Return(assignRepo).Once(),
		assignRepo.On("GetActiveForBranchStage", ctx, originID, order.StageInspection).
			Return([]*staff.Assignment{inspectionAssignment(t, staffID, originID)}, nil).Once(),
		orderRepo.On("CountOpenByStaff", ctx, staffID).Return(0, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRouteOrderCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, resp.ProcessingBranchID.IsEqual(originID))
	assert.Equal(t, order.RoutingAssigned, resp.RoutingStatus)
	require.NotNil(t, resp.Stage)
	assert.Equal(t, order.StageInspection, *resp.Stage)
	require.NotNil(t, resp.StaffID)
	assert.True(t, resp.StaffID.IsEqual(staffID))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRouteOrderCommandHandler_Handle_TransferNeeded(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	originID := kernel.NewUUID()
	mainID := kernel.NewUUID()
	cmd, _ := commands.NewRouteOrderCommand(orderID, kernel.NewUUID())
	o := unroutedOrder(t, orderID, originID)

	orderRepo := new(MockOrderRepository)
	branchRepo := new(MockBranchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(o, nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("Get", ctx, originID).Return(satelliteBranch(t, originID, mainID), nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRouteOrderCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, resp.ProcessingBranchID.IsEqual(mainID))
	assert.Equal(t, order.RoutingPending, resp.RoutingStatus)
	assert.Nil(t, resp.Stage)
	assert.Nil(t, resp.StaffID)
	uow.AssertExpectations(t)
}

func TestRouteOrderCommandHandler_Handle_AlreadyRoutedElsewhere(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	originID := kernel.NewUUID()
	cmd, _ := commands.NewRouteOrderCommand(orderID, kernel.NewUUID())

	o := unroutedOrder(t, orderID, originID)
	require.NoError(t, o.RouteTo(kernel.NewUUID(), time.Now()))

	orderRepo := new(MockOrderRepository)
	branchRepo := new(MockBranchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(o, nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("Get", ctx, originID).Return(mainBranch(t, originID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRouteOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyRouted)
	uow.AssertExpectations(t)
}

func TestRouteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RouteOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	h := commands.NewRouteOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
