package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValueIsRequired is the sentinel error for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel error for invalid values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange is the sentinel error for values outside allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrObjectNotFound is the sentinel error for missing objects.
	ErrObjectNotFound = errors.New("object not found")

	// ErrObjectAlreadyExists is the sentinel error for natural-key collisions.
	ErrObjectAlreadyExists = errors.New("object already exists")

	// ErrObjectStillReferenced is the sentinel error for deletions blocked by
	// an active reference from another object.
	ErrObjectStillReferenced = errors.New("object is still referenced")

	// ErrTransactionFailed is the sentinel error for coordinated multi-aggregate
	// operations that were rolled back.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrConnectionFailed is the sentinel error for an unreachable store.
	ErrConnectionFailed = errors.New("connection failed")
)

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a value does not satisfy a business rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named parameter.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that the addressed object is absent or logically deleted.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates a natural-key collision with an active object.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError for the named
// natural key and its colliding value.
func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError with an
// underlying cause, typically a store-level unique-constraint violation.
func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, value is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.Value)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ObjectStillReferencedError indicates that a deletion was rejected because
// another active object still references the target.
type ObjectStillReferencedError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectStillReferencedError creates an ObjectStillReferencedError for the
// named parameter and identifier.
func NewObjectStillReferencedError(paramName string, id any) *ObjectStillReferencedError {
	return &ObjectStillReferencedError{ParamName: paramName, ID: id}
}

// NewObjectStillReferencedErrorWithCause creates an ObjectStillReferencedError
// with an underlying cause.
func NewObjectStillReferencedErrorWithCause(paramName string, id any, cause error) *ObjectStillReferencedError {
	return &ObjectStillReferencedError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectStillReferencedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectStillReferenced, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectStillReferenced, e.ID)
}

func (e *ObjectStillReferencedError) Unwrap() error {
	return ErrObjectStillReferenced
}

// TransactionError indicates that a coordinated multi-aggregate operation failed
// and was rolled back. It always carries the error that triggered the rollback.
type TransactionError struct {
	Op    string
	Cause error
}

// NewTransactionError creates a TransactionError for the named operation,
// wrapping the error that triggered the rollback.
func NewTransactionError(op string, cause error) *TransactionError {
	return &TransactionError{Op: op, Cause: cause}
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %s)", ErrTransactionFailed, e.Op, e.Cause)
}

// Unwrap exposes both the sentinel and the triggering cause, so callers can
// classify the failure with errors.Is against either.
func (e *TransactionError) Unwrap() []error {
	return []error{ErrTransactionFailed, e.Cause}
}

// ConnectionError indicates that a store connection could not be obtained.
type ConnectionError struct {
	Addr  string
	Cause error
}

// NewConnectionError creates a ConnectionError for the given address.
func NewConnectionError(addr string, cause error) *ConnectionError {
	return &ConnectionError{Addr: addr, Cause: cause}
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConnectionFailed, e.Addr, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConnectionFailed, e.Addr)
}

func (e *ConnectionError) Unwrap() error {
	return ErrConnectionFailed
}
