package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrTrackingIsRequired = errors.New("tracking is required")
)

// CreateShipmentCommand represents a request to register a new shipment.
// Carrier, service level and status arrive as wire strings and are parsed
// into their closed enums during construction.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("TRK-1", "ANDREANI", "EXPRESS", 1500, nil, nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	tracking     string
	carrier      shipment.Carrier
	serviceLevel shipment.ServiceLevel
	cost         float64
	dispatchedOn *time.Time
	estimatedOn  *time.Time
	status       shipment.Status

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// The tracking code must be present; carrier must name a known carrier;
// empty service level and status fall back to their defaults.
func NewCreateShipmentCommand(
	tracking string,
	carrier string,
	serviceLevel string,
	cost float64,
	dispatchedOn *time.Time,
	estimatedOn *time.Time,
	status string,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setTracking(tracking),
		shipmentCommand.setCarrier(carrier),
		shipmentCommand.setServiceLevel(serviceLevel),
		shipmentCommand.setStatus(status),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	shipmentCommand.cost = cost
	shipmentCommand.dispatchedOn = dispatchedOn
	shipmentCommand.estimatedOn = estimatedOn

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Tracking returns the carrier tracking code.
func (c CreateShipmentCommand) Tracking() string {
	return c.tracking
}

// Carrier returns the parsed carrier.
func (c CreateShipmentCommand) Carrier() shipment.Carrier {
	return c.carrier
}

// ServiceLevel returns the parsed service level.
func (c CreateShipmentCommand) ServiceLevel() shipment.ServiceLevel {
	return c.serviceLevel
}

// Cost returns the shipping cost.
func (c CreateShipmentCommand) Cost() float64 {
	return c.cost
}

// DispatchedOn returns the dispatch date, if any.
func (c CreateShipmentCommand) DispatchedOn() *time.Time {
	return c.dispatchedOn
}

// EstimatedOn returns the estimated delivery date, if any.
func (c CreateShipmentCommand) EstimatedOn() *time.Time {
	return c.estimatedOn
}

// Status returns the parsed shipment status.
func (c CreateShipmentCommand) Status() shipment.Status {
	return c.status
}

func (c *CreateShipmentCommand) setTracking(tracking string) error {
	if tracking == "" {
		return ErrTrackingIsRequired
	}

	c.tracking = tracking
	return nil
}

func (c *CreateShipmentCommand) setCarrier(value string) error {
	carrier, err := shipment.CarrierFromString(value)
	if err != nil {
		return err
	}

	c.carrier = carrier
	return nil
}

func (c *CreateShipmentCommand) setServiceLevel(value string) error {
	serviceLevel, err := shipment.ServiceLevelFromString(value)
	if err != nil {
		return err
	}

	c.serviceLevel = serviceLevel
	return nil
}

func (c *CreateShipmentCommand) setStatus(value string) error {
	status, err := shipment.StatusFromString(value)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
