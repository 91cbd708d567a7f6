package commands_test

import (
	"testing"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOverrideClassificationCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	cmd, err := commands.NewOverrideClassificationCommand(
		orderID, order.SizeBulk, actorID, "three carpets exceed the rack", true)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.SizeBulk, cmd.Target())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, "three carpets exceed the rack", cmd.Justification())
	assert.True(t, cmd.MayOverride())
}

func TestNewOverrideClassificationCommand_UnknownTarget(t *testing.T) {
	_, err := commands.NewOverrideClassificationCommand(
		kernel.NewUUID(), order.SizeClass("Medium"), kernel.NewUUID(), "reason", true)
	require.Error(t, err)
}

func TestNewOverrideClassificationCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewOverrideClassificationCommand(
		kernel.NewUUID(), order.SizeBulk, kernel.UUID{}, "reason", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestOverrideClassificationCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.OverrideClassificationCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOverrideClassificationCommandIsNotConstructed)
}
