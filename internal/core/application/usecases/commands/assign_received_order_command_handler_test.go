package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/staff"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func receivedOrder(t *testing.T, processingBranchID kernel.UUID) *order.Order {
	t.Helper()
	o := unroutedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, o.RouteTo(processingBranchID, time.Now()))
	require.NoError(t, o.DispatchTransfer())
	require.NoError(t, o.MarkReceived(time.Now()))
	return o
}

func TestAssignReceivedOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	staffID := kernel.NewUUID()
	cmd, _ := commands.NewAssignReceivedOrderCommand()
	o := receivedOrder(t, branchID)

	orderRepo := new(MockOrderRepository)
	assignRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInReceivedStatus", ctx).Return(o, nil).Once(),
		uow.On("AssignmentRepository").Return(assignRepo).Once(),
		assignRepo.On("GetActiveForBranchStage", ctx, branchID, order.StageInspection).
			Return([]*staff.Assignment{inspectionAssignment(t, staffID, branchID)}, nil).Once(),
		orderRepo.On("CountOpenByStaff", ctx, staffID).Return(0, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignReceivedOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.RoutingAssigned, o.RoutingStatus())
	require.NotNil(t, o.Stage())
	assert.Equal(t, order.StageInspection, *o.Stage())
	require.NotNil(t, o.StaffID())
	assert.True(t, o.StaffID().IsEqual(staffID))
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAssignReceivedOrderCommandHandler_Handle_NoStaffAvailable(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	cmd, _ := commands.NewAssignReceivedOrderCommand()
	o := receivedOrder(t, branchID)

	orderRepo := new(MockOrderRepository)
	assignRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInReceivedStatus", ctx).Return(o, nil).Once(),
		uow.On("AssignmentRepository").Return(assignRepo).Once(),
		assignRepo.On("GetActiveForBranchStage", ctx, branchID, order.StageInspection).
			Return([]*staff.Assignment{}, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignReceivedOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.RoutingAssigned, o.RoutingStatus())
	assert.Nil(t, o.StaffID())
	uow.AssertExpectations(t)
}

func TestAssignReceivedOrderCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignReceivedOrderCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInReceivedStatus", ctx).
			Return(nil, errs.NewObjectNotFoundError("order", "received")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignReceivedOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoReceivedOrdersFound)
	uow.AssertExpectations(t)
}
