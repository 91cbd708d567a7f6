package branch_test

import (
	"testing"

	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBranch(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create main branch without main store reference", func(t *testing.T) {
		b, err := branch.NewBranch(validID, "Westlands Main", branch.KindMain, nil, 8)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(validID))
		assert.Equal(t, "Westlands Main", b.Name())
		assert.Equal(t, branch.KindMain, b.Kind())
		assert.Nil(t, b.MainBranchID())
		assert.Equal(t, 8, b.SortingWindowHours())
	})

	t.Run("should create satellite branch pointing at its main store", func(t *testing.T) {
		mainID := kernel.NewUUID()

		b, err := branch.NewBranch(validID, "CBD Kiosk", branch.KindSatellite, &mainID, 0)

		require.NoError(t, err)
		require.NotNil(t, b.MainBranchID())
		assert.True(t, b.MainBranchID().IsEqual(mainID))
	})

	t.Run("should fail satellite without main store", func(t *testing.T) {
		b, err := branch.NewBranch(validID, "CBD Kiosk", branch.KindSatellite, nil, 0)

		assert.ErrorIs(t, err, branch.ErrMainBranchIsRequired)
		assert.Nil(t, b)
	})

	t.Run("should fail without name", func(t *testing.T) {
		b, err := branch.NewBranch(validID, "", branch.KindMain, nil, 0)

		assert.ErrorIs(t, err, branch.ErrNameIsRequired)
		assert.Nil(t, b)
	})

	t.Run("should fail with unknown kind", func(t *testing.T) {
		b, err := branch.NewBranch(validID, "Westlands Main", branch.Kind("franchise"), nil, 0)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, b)
	})

	t.Run("should fail with negative sorting window", func(t *testing.T) {
		b, err := branch.NewBranch(validID, "Westlands Main", branch.KindMain, nil, -1)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, b)
	})
}

func TestBranch_ProcessingBranchID(t *testing.T) {
	t.Run("should process own intake for main branches", func(t *testing.T) {
		id := kernel.NewUUID()
		b, _ := branch.NewBranch(id, "Westlands Main", branch.KindMain, nil, 0)

		assert.True(t, b.ProcessingBranchID().IsEqual(id))
	})

	t.Run("should route satellite intake to the main store", func(t *testing.T) {
		mainID := kernel.NewUUID()
		b, _ := branch.NewBranch(kernel.NewUUID(), "CBD Kiosk", branch.KindSatellite, &mainID, 0)

		assert.True(t, b.ProcessingBranchID().IsEqual(mainID))
	})
}

func TestBranch_SortingWindowHours(t *testing.T) {
	t.Run("should default to six hours when unset", func(t *testing.T) {
		b, _ := branch.NewBranch(kernel.NewUUID(), "Westlands Main", branch.KindMain, nil, 0)

		assert.Equal(t, branch.DefaultSortingWindowHours, b.SortingWindowHours())
		assert.Equal(t, 0, b.ConfiguredSortingWindowHours())
	})

	t.Run("should honor a configured window", func(t *testing.T) {
		b, _ := branch.NewBranch(kernel.NewUUID(), "Westlands Main", branch.KindMain, nil, 12)

		assert.Equal(t, 12, b.SortingWindowHours())
		assert.Equal(t, 12, b.ConfiguredSortingWindowHours())
	})
}

func TestBranch_Validate(t *testing.T) {
	t.Run("should fail validation for nil branch", func(t *testing.T) {
		var b *branch.Branch

		assert.Equal(t, branch.ErrBranchIsNotConstructed, b.Validate())
	})

	t.Run("should fail validation for zero-value branch", func(t *testing.T) {
		var b branch.Branch

		assert.Equal(t, branch.ErrBranchIsNotConstructed, b.Validate())
	})
}
