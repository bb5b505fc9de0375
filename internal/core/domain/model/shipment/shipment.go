package shipment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const maxTrackingLength = 40

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a shipment
	// that already carries a store-assigned identifier.
	ErrIDAlreadyAssigned = errors.New("shipment identifier is already assigned")
)

// Shipment represents a physical dispatch of goods in the fulfillment system.
// It is an aggregate root whose identifier is assigned by the store at insert
// time and immutable thereafter.
//
// Shipment follows these invariants:
//   - Tracking code is required and at most 40 characters
//   - Carrier, service level and status belong to their closed sets
//   - Cost is never negative
//   - When both dates are present, the estimated date is not earlier than
//     the dispatch date
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id kernel.ID

	tracking     string
	carrier      Carrier
	serviceLevel ServiceLevel
	cost         float64
	dispatchedOn *time.Time
	estimatedOn  *time.Time
	status       Status

	softDelete kernel.SoftDelete

	isConstructed bool
}

// NewShipment creates a new Shipment with validation. The shipment carries
// kernel.ZeroID until a repository persists it and assigns the generated
// identifier via AssignID.
//
// Example:
//
//	s, err := NewShipment("TRK-1", Andreani, Express, 1200.00, nil, nil, Preparing)
//	if err != nil {
//	    // Handle validation error
//	}
func NewShipment(
	tracking string,
	carrier Carrier,
	serviceLevel ServiceLevel,
	cost float64,
	dispatchedOn *time.Time,
	estimatedOn *time.Time,
	status Status,
) (*Shipment, error) {
	shipment := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		shipment.setTracking(tracking),
		shipment.setCarrier(carrier),
		shipment.setServiceLevel(serviceLevel),
		shipment.setCost(cost),
		shipment.setDates(dispatchedOn, estimatedOn),
		shipment.setStatus(status),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment reconstitutes a Shipment from persistence, including its
// store-assigned identifier and logical-deletion state. The same invariants
// as NewShipment are enforced to keep corrupted rows out of the domain.
func RestoreShipment(
	id kernel.ID,
	tracking string,
	carrier Carrier,
	serviceLevel ServiceLevel,
	cost float64,
	dispatchedOn *time.Time,
	estimatedOn *time.Time,
	status Status,
	deleted bool,
) (*Shipment, error) {
	shipment, err := NewShipment(tracking, carrier, serviceLevel, cost, dispatchedOn, estimatedOn, status)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}

	shipment.id = id
	shipment.softDelete = kernel.RestoreSoftDelete(deleted)
	return shipment, nil
}

// Validate ensures the Shipment instance was properly constructed through
// its factory methods. This prevents bypassing validation by directly
// instantiating the struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their store-assigned identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// AssignID records the store-assigned identifier after the initial insert.
// It fails if the shipment already carries an identifier.
func (s *Shipment) AssignID(id kernel.ID) error {
	if !s.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// ID returns the shipment's store-assigned identifier.
// Returns kernel.ZeroID if the shipment has not been persisted yet.
func (s *Shipment) ID() kernel.ID {
	return s.id
}

// Tracking returns the shipment's tracking code.
func (s *Shipment) Tracking() string {
	return s.tracking
}

// Carrier returns the company transporting the shipment.
func (s *Shipment) Carrier() Carrier {
	return s.carrier
}

// ServiceLevel returns the delivery speed tier.
func (s *Shipment) ServiceLevel() ServiceLevel {
	return s.serviceLevel
}

// Cost returns the shipment cost.
func (s *Shipment) Cost() float64 {
	return s.cost
}

// DispatchedOn returns the dispatch date, or nil if not dispatched yet.
func (s *Shipment) DispatchedOn() *time.Time {
	return s.dispatchedOn
}

// EstimatedOn returns the estimated delivery date, or nil if not calculated yet.
func (s *Shipment) EstimatedOn() *time.Time {
	return s.estimatedOn
}

// Status returns the current tracking state of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// IsDeleted reports whether the shipment has been logically deleted.
func (s *Shipment) IsDeleted() bool {
	return s.softDelete.IsDeleted()
}

// MarkDeleted flags the shipment as logically deleted.
// The row remains addressable for referential purposes.
func (s *Shipment) MarkDeleted() {
	s.softDelete.MarkDeleted()
}

func (s *Shipment) setTracking(tracking string) error {
	if tracking == "" {
		return errs.NewValueIsRequiredError("tracking")
	}
	if len(tracking) > maxTrackingLength {
		return errs.NewValueIsOutOfRangeError("tracking length", len(tracking), 1, maxTrackingLength)
	}
	s.tracking = tracking
	return nil
}

func (s *Shipment) setCarrier(carrier Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	s.carrier = carrier
	return nil
}

func (s *Shipment) setServiceLevel(serviceLevel ServiceLevel) error {
	if err := serviceLevel.Validate(); err != nil {
		return err
	}
	s.serviceLevel = serviceLevel
	return nil
}

func (s *Shipment) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%.2f is less than 0", cost))
	}
	s.cost = cost
	return nil
}

func (s *Shipment) setDates(dispatchedOn, estimatedOn *time.Time) error {
	if dispatchedOn != nil && estimatedOn != nil && estimatedOn.Before(*dispatchedOn) {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedOn",
			fmt.Errorf("estimated date %s is before dispatch date %s",
				estimatedOn.Format(time.DateOnly), dispatchedOn.Format(time.DateOnly)),
		)
	}
	s.dispatchedOn = dispatchedOn
	s.estimatedOn = estimatedOn
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
