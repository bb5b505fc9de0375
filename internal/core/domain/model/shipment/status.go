package shipment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the tracking state of a shipment.
//
// Typical flow:
//
//	Preparing ──> InTransit ──> Delivered
//
// The store default for new shipments is Preparing.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Preparing is the initial state: the shipment has not left the warehouse.
	Preparing

	// InTransit indicates the shipment has been dispatched and is on its way.
	InTransit

	// Delivered indicates the shipment reached its destination.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Preparing:     "PREPARING",
		InTransit:     "IN_TRANSIT",
		Delivered:     "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing: "PREPARING",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

// StatusFromString converts a string to a Status.
// Case and surrounding whitespace are normalized; an empty string yields the
// Preparing default, any other mismatch is an explicit validation error.
func StatusFromString(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return Preparing, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid shipment status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Preparing, InTransit, Delivered.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the canonical name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
