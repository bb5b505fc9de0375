package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	shipmentCmd := newCreateShipmentCmd(t, "TRK-1")
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand("ORD-0001", date, "ACME SA", 20000, "INVOICED", shipmentCmd)

	require.NoError(t, err)
	assert.Equal(t, "ORD-0001", cmd.Number())
	assert.Equal(t, date, cmd.Date())
	assert.Equal(t, "ACME SA", cmd.CustomerName())
	assert.InDelta(t, 20000.0, cmd.Total(), 0.001)
	assert.Equal(t, order.Invoiced, cmd.Status())
	assert.Equal(t, "TRK-1", cmd.Shipment().Tracking())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_EmptyStatusDefaultsToNew(t *testing.T) {
	shipmentCmd := newCreateShipmentCmd(t, "TRK-1")

	cmd, err := commands.NewCreateOrderCommand("ORD-0001", time.Now(), "ACME SA", 100, "", shipmentCmd)

	require.NoError(t, err)
	assert.Equal(t, order.New, cmd.Status())
}

func TestNewCreateOrderCommand_EmptyNumber(t *testing.T) {
	shipmentCmd := newCreateShipmentCmd(t, "TRK-1")

	_, err := commands.NewCreateOrderCommand("", time.Now(), "ACME SA", 100, "NEW", shipmentCmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNumberIsRequired)
}

func TestNewCreateOrderCommand_UnknownStatus(t *testing.T) {
	shipmentCmd := newCreateShipmentCmd(t, "TRK-1")

	_, err := commands.NewCreateOrderCommand("ORD-0001", time.Now(), "ACME SA", 100, "CANCELLED", shipmentCmd)

	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnconstructedShipment(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		"ORD-0001", time.Now(), "ACME SA", 100, "NEW", commands.CreateShipmentCommand{},
	)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrShipmentIsRequired)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
