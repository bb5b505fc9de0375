package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a request to soft-delete a shipment.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to soft-delete a shipment.
func NewDeleteShipmentCommand(shipmentID kernel.ID) (DeleteShipmentCommand, error) {
	shipmentCommand := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentCommand.setShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteShipmentCommandIsNotConstructed if validation fails.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being deleted.
func (c DeleteShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

func (c *DeleteShipmentCommand) setShipmentID(shipmentID kernel.ID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
