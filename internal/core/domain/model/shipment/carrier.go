package shipment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Carrier represents the company transporting a shipment.
// It is a closed set: converting an arbitrary string to a Carrier fails
// explicitly when the string does not name a member of the set.
type Carrier int

const (
	// CarrierUnknown represents an invalid or undefined carrier.
	// This value (0) helps catch uninitialized Carrier values.
	CarrierUnknown Carrier = iota

	// Andreani ships through the Andreani network.
	Andreani

	// Oca ships through the OCA network.
	Oca

	// CorreoArg ships through Correo Argentino.
	CorreoArg
)

func getCarrierStrings() map[Carrier]string {
	return map[Carrier]string{
		CarrierUnknown: "UNKNOWN",
		Andreani:       "ANDREANI",
		Oca:            "OCA",
		CorreoArg:      "CORREO_ARG",
	}
}

func getValidCarrierStrings() map[Carrier]string {
	//nolint:exhaustive // CarrierUnknown is intentionally excluded as it's invalid
	return map[Carrier]string{
		Andreani:  "ANDREANI",
		Oca:       "OCA",
		CorreoArg: "CORREO_ARG",
	}
}

// CarrierFromString converts a string to a Carrier.
// Case and surrounding whitespace are normalized; any other mismatch is an
// explicit validation error, never a default value.
func CarrierFromString(value string) (Carrier, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for carrier, str := range getValidCarrierStrings() {
		if str == normalized {
			return carrier, nil
		}
	}
	return CarrierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"carrier",
		fmt.Errorf("%q is not a valid carrier", value),
	)
}

// Validate checks if the Carrier value is a member of the closed set.
func (c Carrier) Validate() error {
	if _, ok := getValidCarrierStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"carrier",
			fmt.Errorf("%d is not a valid carrier", c),
		)
	}
	return nil
}

// String returns the canonical name of the carrier.
// Implements fmt.Stringer and is safe to call on any Carrier value.
func (c Carrier) String() string {
	if str, ok := getCarrierStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
