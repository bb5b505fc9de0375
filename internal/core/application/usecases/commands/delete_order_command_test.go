package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_ValidInput(t *testing.T) {
	id, _ := kernel.NewID(7)

	cmd, err := commands.NewDeleteOrderCommand(id)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	require.NoError(t, cmd.Validate())
}

func TestNewDeleteOrderCommand_ZeroID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.ZeroID)

	require.Error(t, err)
}

func TestDeleteOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.DeleteOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}
