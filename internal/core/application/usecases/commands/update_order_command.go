package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace the mutable state of an
// existing order. The shipment reference is not part of the update surface;
// it stays whatever the coordinated create established.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.ID
	number       string
	date         time.Time
	customerName string
	total        float64
	status       order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// Validates the identifier, requires the number, and parses the status.
func NewUpdateOrderCommand(
	orderID kernel.ID,
	number string,
	date time.Time,
	customerName string,
	total float64,
	status string,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setNumber(number),
		orderCommand.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	orderCommand.date = date
	orderCommand.customerName = customerName
	orderCommand.total = total

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Number returns the business order number.
func (c UpdateOrderCommand) Number() string {
	return c.number
}

// Date returns the order date.
func (c UpdateOrderCommand) Date() time.Time {
	return c.date
}

// CustomerName returns the customer the order was placed by.
func (c UpdateOrderCommand) CustomerName() string {
	return c.customerName
}

// Total returns the order total.
func (c UpdateOrderCommand) Total() float64 {
	return c.total
}

// Status returns the parsed order status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *UpdateOrderCommand) setStatus(value string) error {
	status, err := order.StatusFromString(value)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
