package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

const (
	maxNumberLength       = 20
	maxCustomerNameLength = 120
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a store-assigned identifier.
	ErrIDAlreadyAssigned = errors.New("order identifier is already assigned")

	// ErrShipmentNotPersisted is returned when attaching a shipment that has not
	// been inserted yet. The order row needs the shipment's generated identifier.
	ErrShipmentNotPersisted = errors.New("shipment must be persisted before it can be attached to an order")
)

// Order represents a customer order in the fulfillment system. It is the
// aggregate root that owns the only pointer of the Order→Shipment relationship:
// the shipment carries no back-reference.
//
// Order follows these invariants:
//   - Number is required, at most 20 characters, unique among active orders
//   - Date and customer name are required (name at most 120 characters)
//   - Total is never negative
//   - Status belongs to its closed set
//   - At most one Shipment is referenced, and a Shipment serves at most one Order
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the store-assigned identifier, zero until persisted
	id kernel.ID

	// number is the caller-meaningful natural key
	number string

	// date is the day the order was placed
	date time.Time

	// customerName identifies the ordering customer
	customerName string

	// total is the order amount (never negative)
	total float64

	// status is the billing state of the order
	status Status

	// shipmentID is the referenced shipment's identifier (nil if none)
	shipmentID *kernel.ID

	// shipment is the referenced shipment when reconstructed by a read path;
	// nil when the reference is absent or the shipment is logically deleted
	shipment *shipment.Shipment

	// softDelete is the shared logical-deletion state
	softDelete kernel.SoftDelete

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order carries
// kernel.ZeroID and no shipment reference until a repository persists it;
// the coordinated create attaches the shipment once its identifier is known.
//
// Example:
//
//	o, err := NewOrder("ORD-1", orderDate, "Jane Doe", 25000.00, New)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	number string,
	date time.Time,
	customerName string,
	total float64,
	status Status,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setNumber(number),
		order.setDate(date),
		order.setCustomerName(customerName),
		order.setTotal(total),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstitutes an Order from persistence, including its
// store-assigned identifier, shipment reference and logical-deletion state.
// The referenced Shipment aggregate, when active, is attached separately via
// AttachShipment by the read path that joined it.
func RestoreOrder(
	id kernel.ID,
	number string,
	date time.Time,
	customerName string,
	total float64,
	status Status,
	shipmentID *kernel.ID,
	deleted bool,
) (*Order, error) {
	order, err := NewOrder(number, date, customerName, total, status)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}

	if shipmentID != nil {
		if err = shipmentID.Validate(); err != nil {
			return nil, err
		}
	}

	order.id = id
	order.shipmentID = shipmentID
	order.softDelete = kernel.RestoreSoftDelete(deleted)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// its factory methods. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// AssignID records the store-assigned identifier after the initial insert.
// It fails if the order already carries an identifier.
func (o *Order) AssignID(id kernel.ID) error {
	if !o.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

// AttachShipment records the order's shipment reference. The shipment must be
// valid and already persisted: the order row stores the shipment's generated
// identifier, so the shipment insert is strictly sequenced first.
func (o *Order) AttachShipment(s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.ID().IsZero() {
		return ErrShipmentNotPersisted
	}

	id := s.ID()
	o.shipmentID = &id
	o.shipment = s
	return nil
}

// ID returns the order's store-assigned identifier.
// Returns kernel.ZeroID if the order has not been persisted yet.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Number returns the order's natural key.
func (o *Order) Number() string {
	return o.number
}

// Date returns the day the order was placed.
func (o *Order) Date() time.Time {
	return o.date
}

// CustomerName returns the name of the ordering customer.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Total returns the order amount.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the billing state of the order.
func (o *Order) Status() Status {
	return o.status
}

// ShipmentID returns the referenced shipment's identifier.
// Returns nil if no shipment is referenced.
func (o *Order) ShipmentID() *kernel.ID {
	return o.shipmentID
}

// Shipment returns the referenced shipment aggregate when a read path
// attached it. Returns nil when no shipment is referenced or the referenced
// shipment is logically deleted.
func (o *Order) Shipment() *shipment.Shipment {
	return o.shipment
}

// IsDeleted reports whether the order has been logically deleted.
func (o *Order) IsDeleted() bool {
	return o.softDelete.IsDeleted()
}

// MarkDeleted flags the order as logically deleted.
// Deletion does not cascade to the referenced shipment.
func (o *Order) MarkDeleted() {
	o.softDelete.MarkDeleted()
}

// setNumber validates and sets the order's natural key.
// This is a private method used only during construction.
func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if len(number) > maxNumberLength {
		return errs.NewValueIsOutOfRangeError("number length", len(number), 1, maxNumberLength)
	}
	o.number = number
	return nil
}

// setDate validates and sets the order date.
// This is a private method used only during construction.
func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

// setCustomerName validates and sets the customer name.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if len(customerName) > maxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customerName length", len(customerName), 1, maxCustomerNameLength)
	}
	o.customerName = customerName
	return nil
}

// setTotal validates and sets the order amount.
// Total must not be negative.
// This is a private method used only during construction.
func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%.2f is less than 0", total))
	}
	o.total = total
	return nil
}

// setStatus validates and sets the billing state.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
