package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a request to replace the mutable state of
// an existing shipment. Carries the full new state, not a patch.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.ID
	tracking     string
	carrier      shipment.Carrier
	serviceLevel shipment.ServiceLevel
	cost         float64
	dispatchedOn *time.Time
	estimatedOn  *time.Time
	status       shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update an existing shipment.
// Validates the identifier and parses the enum-valued fields.
func NewUpdateShipmentCommand(
	shipmentID kernel.ID,
	tracking string,
	carrier string,
	serviceLevel string,
	cost float64,
	dispatchedOn *time.Time,
	estimatedOn *time.Time,
	status string,
) (UpdateShipmentCommand, error) {
	shipmentCommand := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setTracking(tracking),
		shipmentCommand.setCarrier(carrier),
		shipmentCommand.setServiceLevel(serviceLevel),
		shipmentCommand.setStatus(status),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	shipmentCommand.cost = cost
	shipmentCommand.dispatchedOn = dispatchedOn
	shipmentCommand.estimatedOn = estimatedOn

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being updated.
func (c UpdateShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

// Tracking returns the carrier tracking code.
func (c UpdateShipmentCommand) Tracking() string {
	return c.tracking
}

// Carrier returns the parsed carrier.
func (c UpdateShipmentCommand) Carrier() shipment.Carrier {
	return c.carrier
}

// ServiceLevel returns the parsed service level.
func (c UpdateShipmentCommand) ServiceLevel() shipment.ServiceLevel {
	return c.serviceLevel
}

// Cost returns the shipping cost.
func (c UpdateShipmentCommand) Cost() float64 {
	return c.cost
}

// DispatchedOn returns the dispatch date, if any.
func (c UpdateShipmentCommand) DispatchedOn() *time.Time {
	return c.dispatchedOn
}

// EstimatedOn returns the estimated delivery date, if any.
func (c UpdateShipmentCommand) EstimatedOn() *time.Time {
	return c.estimatedOn
}

// Status returns the parsed shipment status.
func (c UpdateShipmentCommand) Status() shipment.Status {
	return c.status
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.ID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setTracking(tracking string) error {
	if tracking == "" {
		return ErrTrackingIsRequired
	}

	c.tracking = tracking
	return nil
}

func (c *UpdateShipmentCommand) setCarrier(value string) error {
	carrier, err := shipment.CarrierFromString(value)
	if err != nil {
		return err
	}

	c.carrier = carrier
	return nil
}

func (c *UpdateShipmentCommand) setServiceLevel(value string) error {
	serviceLevel, err := shipment.ServiceLevelFromString(value)
	if err != nil {
		return err
	}

	c.serviceLevel = serviceLevel
	return nil
}

func (c *UpdateShipmentCommand) setStatus(value string) error {
	status, err := shipment.StatusFromString(value)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
