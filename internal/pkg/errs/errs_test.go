package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("tracking")

		assert.Equal(t, "tracking", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: tracking", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("tracking", cause)

		assert.Equal(t, "tracking", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: tracking (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("cost", -5.0, 0.0, nil)

		assert.Equal(t, "cost", err.ParamName)
		assert.Equal(t, -5.0, err.Value)
		assert.Equal(t, 0.0, err.Min)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -5 is cost, min value is 0, max value is <nil>", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("total", -5, 0, 100, cause)

		assert.Equal(t, "total", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is total, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "customerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerName", cause)

		assert.Equal(t, "customerName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerName (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("number", "ORD-1")

		assert.Equal(t, "number", err.ParamName)
		assert.Equal(t, "ORD-1", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: ORD-1", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewObjectAlreadyExistsErrorWithCause("tracking", "TRK-1", cause)

		assert.Equal(t, "tracking", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: tracking, value is: TRK-1 (cause: duplicated key not allowed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})
}

func TestObjectStillReferencedError(t *testing.T) {
	t.Run("NewObjectStillReferencedError", func(t *testing.T) {
		err := errs.NewObjectStillReferencedError("shipmentId", "42")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object is still referenced: 42", err.Error())
		assert.Equal(t, errs.ErrObjectStillReferenced, err.Unwrap())
	})
}

func TestTransactionError(t *testing.T) {
	t.Run("NewTransactionError", func(t *testing.T) {
		cause := errors.New("insert failed")
		err := errs.NewTransactionError("create order with shipment", cause)

		assert.Equal(t, "create order with shipment", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "transaction failed: create order with shipment (cause: insert failed)", err.Error())
	})

	t.Run("unwraps to sentinel and cause", func(t *testing.T) {
		cause := errs.NewObjectAlreadyExistsError("number", "ORD-1")
		err := errs.NewTransactionError("create order with shipment", cause)

		require.ErrorIs(t, err, errs.ErrTransactionFailed)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})
}

func TestConnectionError(t *testing.T) {
	t.Run("NewConnectionError", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := errs.NewConnectionError("localhost:5432", cause)

		assert.Equal(t, "localhost:5432", err.Addr)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "connection failed: localhost:5432 (cause: dial tcp: connection refused)", err.Error())
		assert.Equal(t, errs.ErrConnectionFailed, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrObjectStillReferenced)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrTransactionFailed)
		require.Error(t, errs.ErrConnectionFailed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "object is still referenced", errs.ErrObjectStillReferenced.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "transaction failed", errs.ErrTransactionFailed.Error())
		assert.Equal(t, "connection failed", errs.ErrConnectionFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("tracking")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("cost", -1, 0, nil)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("number")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		alreadyExistsErr := errs.NewObjectAlreadyExistsError("number", "ORD-1")
		require.ErrorIs(t, alreadyExistsErr, errs.ErrObjectAlreadyExists)

		stillReferencedErr := errs.NewObjectStillReferencedError("shipmentId", 7)
		require.ErrorIs(t, stillReferencedErr, errs.ErrObjectStillReferenced)
	})
}
