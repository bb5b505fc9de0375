package shipment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLevelFromString(t *testing.T) {
	t.Run("should parse canonical values", func(t *testing.T) {
		level, err := shipment.ServiceLevelFromString("EXPRESS")
		require.NoError(t, err)
		assert.Equal(t, shipment.Express, level)

		level, err = shipment.ServiceLevelFromString("STANDARD")
		require.NoError(t, err)
		assert.Equal(t, shipment.Standard, level)
	})

	t.Run("should normalize case and whitespace", func(t *testing.T) {
		level, err := shipment.ServiceLevelFromString(" express ")

		require.NoError(t, err)
		assert.Equal(t, shipment.Express, level)
	})

	t.Run("should default to Standard on empty input", func(t *testing.T) {
		level, err := shipment.ServiceLevelFromString("")

		require.NoError(t, err)
		assert.Equal(t, shipment.Standard, level)
	})

	t.Run("should fail on unknown value", func(t *testing.T) {
		level, err := shipment.ServiceLevelFromString("OVERNIGHT")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.ServiceLevelUnknown, level)
	})
}

func TestServiceLevel_Validate(t *testing.T) {
	require.NoError(t, shipment.Standard.Validate())
	require.NoError(t, shipment.Express.Validate())
	require.Error(t, shipment.ServiceLevelUnknown.Validate())
}

func TestServiceLevel_String(t *testing.T) {
	assert.Equal(t, "STANDARD", shipment.Standard.String())
	assert.Equal(t, "EXPRESS", shipment.Express.String())
	assert.Equal(t, "UNKNOWN", shipment.ServiceLevelUnknown.String())
}
