package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// ZeroID is the identifier of an aggregate that has not been persisted yet.
// The store assigns the real identifier at insert time.
const ZeroID ID = 0

// ID is the store-assigned identifier of an aggregate.
//
// Identifiers are opaque to the domain: they are generated by the database
// at insert time and immutable afterwards. A freshly constructed aggregate
// carries ZeroID until its repository persists it and assigns the generated
// value.
type ID int64

// NewID creates an ID from a raw store value.
//
// Returns an error if the value is not a valid persisted identifier
// (persisted identifiers are always positive).
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return ZeroID, err
	}
	return id, nil
}

// Validate checks that the ID refers to a persisted aggregate.
// ZeroID and negative values are invalid.
func (id ID) Validate() error {
	if id <= ZeroID {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", id))
	}
	return nil
}

// IsZero reports whether the ID has not been assigned by the store yet.
func (id ID) IsZero() bool {
	return id == ZeroID
}

// IsEqual compares two identifiers for equality.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Int64 returns the raw store representation of the ID.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the ID.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
