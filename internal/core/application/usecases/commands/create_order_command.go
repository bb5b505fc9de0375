package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNumberIsRequired   = errors.New("number is required")
	ErrShipmentIsRequired = errors.New("shipment is required")
)

// CreateOrderCommand represents a request to create a new order together with
// its shipment. The shipment part is a full CreateShipmentCommand: both halves
// are validated up front, and the handler persists them in one transaction.
//
// Example:
//
//	shipmentCmd, _ := NewCreateShipmentCommand("TRK-1", "ANDREANI", "", 1500, nil, nil, "")
//	cmd, err := NewCreateOrderCommand("ORD-1", orderDate, "ACME SA", 20000, "NEW", shipmentCmd)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	number       string
	date         time.Time
	customerName string
	total        float64
	status       order.Status
	shipment     CreateShipmentCommand

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order with its shipment.
// The order number and a constructed shipment command are required; an empty
// status falls back to the initial one.
func NewCreateOrderCommand(
	number string,
	date time.Time,
	customerName string,
	total float64,
	status string,
	shipmentCmd CreateShipmentCommand,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setNumber(number),
		orderCommand.setStatus(status),
		orderCommand.setShipment(shipmentCmd),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.date = date
	orderCommand.customerName = customerName
	orderCommand.total = total

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Number returns the business order number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// Date returns the order date.
func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

// CustomerName returns the customer the order was placed by.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Total returns the order total.
func (c CreateOrderCommand) Total() float64 {
	return c.total
}

// Status returns the parsed order status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Shipment returns the command describing the shipment to create alongside.
func (c CreateOrderCommand) Shipment() CreateShipmentCommand {
	return c.shipment
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setStatus(value string) error {
	status, err := order.StatusFromString(value)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateOrderCommand) setShipment(shipmentCmd CreateShipmentCommand) error {
	if err := shipmentCmd.Validate(); err != nil {
		return ErrShipmentIsRequired
	}

	c.shipment = shipmentCmd
	return nil
}
