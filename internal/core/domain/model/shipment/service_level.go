package shipment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ServiceLevel represents the delivery speed tier of a shipment.
type ServiceLevel int

const (
	// ServiceLevelUnknown represents an invalid or undefined service level.
	ServiceLevelUnknown ServiceLevel = iota

	// Standard is the default delivery tier.
	Standard

	// Express is the expedited delivery tier.
	Express
)

func getServiceLevelStrings() map[ServiceLevel]string {
	return map[ServiceLevel]string{
		ServiceLevelUnknown: "UNKNOWN",
		Standard:            "STANDARD",
		Express:             "EXPRESS",
	}
}

func getValidServiceLevelStrings() map[ServiceLevel]string {
	//nolint:exhaustive // ServiceLevelUnknown is intentionally excluded as it's invalid
	return map[ServiceLevel]string{
		Standard: "STANDARD",
		Express:  "EXPRESS",
	}
}

// ServiceLevelFromString converts a string to a ServiceLevel.
// Case and surrounding whitespace are normalized; an empty string yields the
// Standard default, any other mismatch is an explicit validation error.
func ServiceLevelFromString(value string) (ServiceLevel, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return Standard, nil
	}
	for level, str := range getValidServiceLevelStrings() {
		if str == normalized {
			return level, nil
		}
	}
	return ServiceLevelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"serviceLevel",
		fmt.Errorf("%q is not a valid service level", value),
	)
}

// Validate checks if the ServiceLevel value is a member of the closed set.
func (l ServiceLevel) Validate() error {
	if _, ok := getValidServiceLevelStrings()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceLevel",
			fmt.Errorf("%d is not a valid service level", l),
		)
	}
	return nil
}

// String returns the canonical name of the service level.
func (l ServiceLevel) String() string {
	if str, ok := getServiceLevelStrings()[l]; ok {
		return str
	}
	return "UNKNOWN"
}
