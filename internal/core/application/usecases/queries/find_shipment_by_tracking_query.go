package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrFindShipmentByTrackingQueryIsNotConstructed = errors.New(
	"FindShipmentByTrackingQuery must be created via NewFindShipmentByTrackingQuery constructor",
)

// FindShipmentByTrackingQuery retrieves the active shipment carrying a tracking
// code. At most one active shipment carries any given code.
type FindShipmentByTrackingQuery struct {
	tracking string

	guard guard.ConstructorGuard
}

// NewFindShipmentByTrackingQuery creates a query to look a shipment up by its
// tracking code. The code is required.
func NewFindShipmentByTrackingQuery(tracking string) (FindShipmentByTrackingQuery, error) {
	if tracking == "" {
		return FindShipmentByTrackingQuery{}, errs.NewValueIsRequiredError("tracking")
	}

	return FindShipmentByTrackingQuery{
		tracking: tracking,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindShipmentByTrackingQueryIsNotConstructed if validation fails.
func (q FindShipmentByTrackingQuery) Validate() error {
	return q.guard.Validate(ErrFindShipmentByTrackingQueryIsNotConstructed)
}

// Tracking returns the tracking code being looked up.
func (q FindShipmentByTrackingQuery) Tracking() string {
	return q.tracking
}
