package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the billing state of an order.
//
// Typical flow:
//
//	New ──> Invoiced ──> Shipped
//
// The store default for new orders is New.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	New

	// Invoiced indicates the order has been billed to the customer.
	Invoiced

	// Shipped indicates the order's goods have left the warehouse.
	Shipped
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		New:      "NEW",
		Invoiced: "INVOICED",
		Shipped:  "SHIPPED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:      "NEW",
		Invoiced: "INVOICED",
		Shipped:  "SHIPPED",
	}
}

// StatusFromString converts a string to a Status.
// Case and surrounding whitespace are normalized; an empty string yields the
// New default, any other mismatch is an explicit validation error, never a
// default-guessed value.
func StatusFromString(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return New, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Invoiced, Shipped.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the canonical name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
