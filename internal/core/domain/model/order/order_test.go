package order_test

import (
	"testing"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGarments(t *testing.T, categories ...order.GarmentType) []order.Garment {
	t.Helper()
	garments := make([]order.Garment, 0, len(categories))
	for _, c := range categories {
		g, err := order.NewGarment(c)
		require.NoError(t, err)
		garments = append(garments, g)
	}
	return garments
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	originBranchID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		garments := validGarments(t, "Shirt", "Suit")

		o, err := order.NewOrder(validID, originBranchID, garments, 2000)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.OriginBranchID().IsEqual(originBranchID))
		assert.Equal(t, order.StatusReceived, o.Status())
		assert.Equal(t, order.RoutingUnknown, o.RoutingStatus())
		assert.Nil(t, o.ProcessingBranchID())
		assert.Nil(t, o.Stage())
		assert.Nil(t, o.StaffID())
		assert.Equal(t, int64(2000), o.TotalValue())
		assert.Equal(t, 2, o.GarmentCount())
		assert.Equal(t, int64(1), o.Version())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, originBranchID, validGarments(t, "Shirt"), 100)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail without garments", func(t *testing.T) {
		o, err := order.NewOrder(validID, originBranchID, nil, 100)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrGarmentsAreRequired)
	})

	t.Run("should fail with negative total value", func(t *testing.T) {
		o, err := order.NewOrder(validID, originBranchID, validGarments(t, "Shirt"), -1)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept zero total value", func(t *testing.T) {
		o, err := order.NewOrder(validID, originBranchID, validGarments(t, "Shirt"), 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), o.TotalValue())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero-value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_RouteTo(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("should assign inspection stage when processing branch equals origin", func(t *testing.T) {
		origin := kernel.NewUUID()
		o, _ := order.NewOrder(kernel.NewUUID(), origin, validGarments(t, "Shirt"), 100)

		err := o.RouteTo(origin, now)

		require.NoError(t, err)
		assert.Equal(t, order.RoutingAssigned, o.RoutingStatus())
		assert.Equal(t, order.StatusInspection, o.Status())
		require.NotNil(t, o.Stage())
		assert.Equal(t, order.StageInspection, *o.Stage())
		require.NotNil(t, o.ProcessingBranchID())
		assert.True(t, o.ProcessingBranchID().IsEqual(origin))
		require.NotNil(t, o.RoutedAt())
		assert.Equal(t, now, *o.RoutedAt())
	})

	t.Run("should move to pending when processing branch differs from origin", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)
		mainStore := kernel.NewUUID()

		err := o.RouteTo(mainStore, now)

		require.NoError(t, err)
		assert.Equal(t, order.RoutingPending, o.RoutingStatus())
		assert.Equal(t, order.StatusReceived, o.Status())
		assert.Nil(t, o.Stage())
		require.NotNil(t, o.ProcessingBranchID())
		assert.True(t, o.ProcessingBranchID().IsEqual(mainStore))
	})

	t.Run("should be a no-op when re-routing to the same branch", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)
		mainStore := kernel.NewUUID()
		require.NoError(t, o.RouteTo(mainStore, now))

		err := o.RouteTo(mainStore, now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.RoutingPending, o.RoutingStatus())
		assert.Equal(t, now, *o.RoutedAt())
	})

	t.Run("should fail when re-routing to a different branch", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)
		require.NoError(t, o.RouteTo(kernel.NewUUID(), now))

		err := o.RouteTo(kernel.NewUUID(), now)

		assert.ErrorIs(t, err, order.ErrAlreadyRouted)
	})

	t.Run("should fail with invalid processing branch", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)
		var invalidID kernel.UUID

		err := o.RouteTo(invalidID, now)

		require.Error(t, err)
	})
}

func TestOrder_TransferLifecycle(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	newTransferredOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt", "Dress"), 1500)
		require.NoError(t, err)
		require.NoError(t, o.RouteTo(kernel.NewUUID(), now))
		return o
	}

	t.Run("should walk pending, in transit, received, assigned, processing, ready", func(t *testing.T) {
		o := newTransferredOrder(t)
		staffID := kernel.NewUUID()
		arrived := now.Add(2 * time.Hour)
		sorted := now.Add(5 * time.Hour)
		earliest := sorted.Add(6 * time.Hour)

		require.NoError(t, o.DispatchTransfer())
		assert.Equal(t, order.RoutingInTransit, o.RoutingStatus())

		require.NoError(t, o.MarkReceived(arrived))
		assert.Equal(t, order.RoutingReceived, o.RoutingStatus())
		assert.Equal(t, order.StatusInspection, o.Status())
		assert.Equal(t, arrived, *o.ArrivedAt())

		require.NoError(t, o.AssignStage(order.StageInspection, &staffID))
		assert.Equal(t, order.RoutingAssigned, o.RoutingStatus())
		assert.Equal(t, order.StageInspection, *o.Stage())
		assert.True(t, o.StaffID().IsEqual(staffID))

		require.NoError(t, o.StartProcessing(staffID))
		assert.Equal(t, order.RoutingProcessing, o.RoutingStatus())

		require.NoError(t, o.CompleteProcessing(earliest, sorted))
		assert.Equal(t, order.RoutingReadyForReturn, o.RoutingStatus())
		assert.Equal(t, order.StatusQueuedForDelivery, o.Status())
		assert.Equal(t, earliest, *o.EarliestDeliveryAt())
		assert.Equal(t, sorted, *o.SortedAt())
	})

	t.Run("should treat repeated dispatch as a no-op", func(t *testing.T) {
		o := newTransferredOrder(t)
		require.NoError(t, o.DispatchTransfer())

		err := o.DispatchTransfer()

		require.NoError(t, err)
		assert.Equal(t, order.RoutingInTransit, o.RoutingStatus())
	})

	t.Run("should treat repeated receive as a no-op", func(t *testing.T) {
		o := newTransferredOrder(t)
		require.NoError(t, o.DispatchTransfer())
		arrived := now.Add(time.Hour)
		require.NoError(t, o.MarkReceived(arrived))

		err := o.MarkReceived(arrived.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, arrived, *o.ArrivedAt())
	})

	t.Run("should fail dispatching an order that is not pending", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)

		err := o.DispatchTransfer()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail receiving an order that is not in transit", func(t *testing.T) {
		o := newTransferredOrder(t)

		err := o.MarkReceived(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AssignStage(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	newAssignedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		origin := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), origin, validGarments(t, "Shirt"), 100)
		require.NoError(t, err)
		require.NoError(t, o.RouteTo(origin, now))
		return o
	}

	t.Run("should reassign to the next stage after processing", func(t *testing.T) {
		o := newAssignedOrder(t)
		staffID := kernel.NewUUID()
		require.NoError(t, o.StartProcessing(staffID))

		err := o.AssignStage(order.StageWashing, nil)

		require.NoError(t, err)
		assert.Equal(t, order.RoutingAssigned, o.RoutingStatus())
		assert.Equal(t, order.StageWashing, *o.Stage())
		assert.Nil(t, o.StaffID())
	})

	t.Run("should be a no-op when re-requesting the active stage and staff", func(t *testing.T) {
		o := newAssignedOrder(t)

		err := o.AssignStage(order.StageInspection, nil)

		require.NoError(t, err)
		assert.Equal(t, order.RoutingAssigned, o.RoutingStatus())
	})

	t.Run("should be a no-op when re-requesting the active stage mid-processing", func(t *testing.T) {
		o := newAssignedOrder(t)
		staffID := kernel.NewUUID()
		require.NoError(t, o.AssignStage(order.StageInspection, &staffID))
		require.NoError(t, o.StartProcessing(staffID))

		err := o.AssignStage(order.StageInspection, &staffID)

		require.NoError(t, err)
		assert.Equal(t, order.RoutingProcessing, o.RoutingStatus())
		assert.True(t, o.StaffID().IsEqual(staffID))
	})

	t.Run("should fail for an unknown stage", func(t *testing.T) {
		o := newAssignedOrder(t)

		err := o.AssignStage(order.Stage("folding"), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail before routing begins", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)

		err := o.AssignStage(order.StageWashing, nil)

		require.Error(t, err)
	})
}

func TestOrder_StartProcessing(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("should bind the staff member doing the work", func(t *testing.T) {
		origin := kernel.NewUUID()
		o, _ := order.NewOrder(kernel.NewUUID(), origin, validGarments(t, "Shirt"), 100)
		require.NoError(t, o.RouteTo(origin, now))
		staffID := kernel.NewUUID()

		err := o.StartProcessing(staffID)

		require.NoError(t, err)
		assert.Equal(t, order.RoutingProcessing, o.RoutingStatus())
		assert.True(t, o.StaffID().IsEqual(staffID))
	})

	t.Run("should be a no-op when restarting with the same staff", func(t *testing.T) {
		origin := kernel.NewUUID()
		o, _ := order.NewOrder(kernel.NewUUID(), origin, validGarments(t, "Shirt"), 100)
		require.NoError(t, o.RouteTo(origin, now))
		staffID := kernel.NewUUID()
		require.NoError(t, o.StartProcessing(staffID))

		err := o.StartProcessing(staffID)

		require.NoError(t, err)
	})

	t.Run("should fail when the order is not assigned", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)

		err := o.StartProcessing(kernel.NewUUID())

		require.Error(t, err)
	})
}

func TestOrder_CompleteProcessing(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	newProcessingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		origin := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), origin, validGarments(t, "Shirt"), 100)
		require.NoError(t, err)
		require.NoError(t, o.RouteTo(origin, now))
		require.NoError(t, o.StartProcessing(kernel.NewUUID()))
		return o
	}

	t.Run("should restart the sorting window on repeated completion", func(t *testing.T) {
		o := newProcessingOrder(t)
		first := now.Add(6 * time.Hour)
		require.NoError(t, o.CompleteProcessing(first, now))

		later := now.Add(2 * time.Hour)
		second := later.Add(6 * time.Hour)
		err := o.CompleteProcessing(second, later)

		require.NoError(t, err)
		assert.Equal(t, second, *o.EarliestDeliveryAt())
		assert.Equal(t, later, *o.SortedAt())
	})

	t.Run("should fail when the order is not processing", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)

		err := o.CompleteProcessing(now.Add(6*time.Hour), now)

		require.Error(t, err)
	})
}

func TestOrder_Classification(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	actorID := kernel.NewUUID()
	justification := "customer requested van delivery"

	newClassifiedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 2000)
		require.NoError(t, err)
		require.NoError(t, o.RecordClassification(order.SizeSmall))
		return o
	}

	t.Run("should keep the first recorded classification", func(t *testing.T) {
		o := newClassifiedOrder(t)

		err := o.RecordClassification(order.SizeBulk)

		require.NoError(t, err)
		assert.Equal(t, order.SizeSmall, *o.Classification())
	})

	t.Run("should apply a valid override and append one audit record", func(t *testing.T) {
		o := newClassifiedOrder(t)

		err := o.OverrideClassification(order.SizeBulk, actorID, justification, true, now)

		require.NoError(t, err)
		assert.Equal(t, order.SizeBulk, *o.Classification())
		overrides := o.Overrides()
		require.Len(t, overrides, 1)
		assert.Equal(t, order.SizeSmall, overrides[0].From())
		assert.Equal(t, order.SizeBulk, overrides[0].To())
		assert.True(t, overrides[0].ActorID().IsEqual(actorID))
		assert.Equal(t, justification, overrides[0].Justification())
		assert.Equal(t, now, overrides[0].At())
	})

	t.Run("should reject override without the manager capability", func(t *testing.T) {
		o := newClassifiedOrder(t)

		err := o.OverrideClassification(order.SizeBulk, actorID, justification, false, now)

		assert.ErrorIs(t, err, order.ErrOverrideNotPermitted)
		assert.Equal(t, order.SizeSmall, *o.Classification())
		assert.Empty(t, o.Overrides())
	})

	t.Run("should reject override before any classification", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validGarments(t, "Shirt"), 100)

		err := o.OverrideClassification(order.SizeBulk, actorID, justification, true, now)

		assert.ErrorIs(t, err, order.ErrOrderNotClassified)
	})

	t.Run("should reject override to the classification already in effect", func(t *testing.T) {
		o := newClassifiedOrder(t)

		err := o.OverrideClassification(order.SizeSmall, actorID, justification, true, now)

		assert.ErrorIs(t, err, order.ErrSameClassification)
		assert.Empty(t, o.Overrides())
	})

	t.Run("should reject override with a short justification", func(t *testing.T) {
		o := newClassifiedOrder(t)

		err := o.OverrideClassification(order.SizeBulk, actorID, "too vague", true, now)

		assert.ErrorIs(t, err, order.ErrJustificationTooShort)
		assert.Equal(t, order.SizeSmall, *o.Classification())
		assert.Empty(t, o.Overrides())
	})

	t.Run("should reject override to an unknown class", func(t *testing.T) {
		o := newClassifiedOrder(t)

		err := o.OverrideClassification(order.SizeClass("Medium"), actorID, justification, true, now)

		require.Error(t, err)
		assert.Empty(t, o.Overrides())
	})

	t.Run("should chain overrides into an ordered audit trail", func(t *testing.T) {
		o := newClassifiedOrder(t)
		require.NoError(t, o.OverrideClassification(order.SizeBulk, actorID, justification, true, now))

		err := o.OverrideClassification(order.SizeSmall, actorID, "fits the courier box after repack", true, now.Add(time.Hour))

		require.NoError(t, err)
		overrides := o.Overrides()
		require.Len(t, overrides, 2)
		assert.Equal(t, order.SizeBulk, overrides[1].From())
		assert.Equal(t, order.SizeSmall, overrides[1].To())
		assert.Equal(t, order.SizeSmall, *o.Classification())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reconstruct an order with full routing state", func(t *testing.T) {
		id := kernel.NewUUID()
		origin := kernel.NewUUID()
		processing := kernel.NewUUID()
		staffID := kernel.NewUUID()
		stage := order.StageWashing
		class := order.SizeBulk
		routedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, origin, &processing,
			validGarments(t, "Duvet"),
			order.StatusInspection, order.RoutingProcessing,
			&stage, &staffID,
			&routedAt, nil, nil, nil,
			7000, &class, nil, 4,
		)

		require.NoError(t, err)
		assert.Equal(t, order.RoutingProcessing, o.RoutingStatus())
		assert.Equal(t, order.StageWashing, *o.Stage())
		assert.Equal(t, order.SizeBulk, *o.Classification())
		assert.Equal(t, int64(4), o.Version())
	})

	t.Run("should accept unknown routing status for unrouted orders", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			validGarments(t, "Shirt"),
			order.StatusReceived, order.RoutingUnknown,
			nil, nil, nil, nil, nil, nil,
			100, nil, nil, 1,
		)

		require.NoError(t, err)
		assert.Equal(t, order.RoutingUnknown, o.RoutingStatus())
	})

	t.Run("should fail with a non-positive version", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			validGarments(t, "Shirt"),
			order.StatusReceived, order.RoutingUnknown,
			nil, nil, nil, nil, nil, nil,
			100, nil, nil, 0,
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}
