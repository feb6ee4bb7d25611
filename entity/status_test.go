package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOrderStatusNormalizes(t *testing.T) {
	s, err := ValidateOrderStatus("  Fulfilled ")
	require.NoError(t, err)
	assert.Equal(t, OrderFulfilled, s)

	_, err = ValidateOrderStatus("shipped")
	assert.Error(t, err)
	_, err = ValidateOrderStatus("")
	assert.Error(t, err)
}

func TestValidateReservationStatus(t *testing.T) {
	s, err := ValidateReservationStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, ReservationConfirmed, s)

	_, err = ValidateReservationStatus("seated")
	assert.Error(t, err)
}

func TestValidateContactStatus(t *testing.T) {
	for _, raw := range []string{"new", "read", "replied", "archived"} {
		_, err := ValidateContactStatus(raw)
		assert.NoError(t, err, raw)
	}
	_, err := ValidateContactStatus("deleted")
	assert.Error(t, err)
}

func TestSupplyNeedsRestock(t *testing.T) {
	assert.True(t, Supply{Quantity: 2, RestockLevel: 5}.NeedsRestock())
	assert.False(t, Supply{Quantity: 5, RestockLevel: 5}.NeedsRestock())
}
