package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func processingOrder(t *testing.T, orderID, branchID kernel.UUID) *order.Order {
	t.Helper()
	o := unroutedOrder(t, orderID, branchID)
	require.NoError(t, o.RouteTo(branchID, time.Now()))
	require.NoError(t, o.StartProcessing(kernel.NewUUID()))
	return o
}

func TestCompleteProcessingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteProcessingCommand(orderID, kernel.NewUUID())
	o := processingOrder(t, orderID, branchID)

	orderRepo := new(MockOrderRepository)
	branchRepo := new(MockBranchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(o, nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("Get", ctx, branchID).Return(mainBranch(t, branchID), nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessingCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	// The main branch has no configured window, so the default six hours apply.
	assert.WithinDuration(t, time.Now().Add(6*time.Hour), resp.EarliestDeliveryAt, time.Minute)
	assert.Equal(t, order.RoutingReadyForReturn, o.RoutingStatus())
	assert.Equal(t, order.StatusQueuedForDelivery, o.Status())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCompleteProcessingCommandHandler_Handle_NotRouted(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteProcessingCommand(orderID, kernel.NewUUID())
	o := unroutedOrder(t, orderID, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessingCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrNotRouted)
	uow.AssertExpectations(t)
}

func TestCompleteProcessingCommandHandler_Handle_NotProcessing(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteProcessingCommand(orderID, kernel.NewUUID())

	o := unroutedOrder(t, orderID, branchID)
	require.NoError(t, o.RouteTo(branchID, time.Now()))

	orderRepo := new(MockOrderRepository)
	branchRepo := new(MockBranchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(o, nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("Get", ctx, branchID).Return(mainBranch(t, branchID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessingCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
