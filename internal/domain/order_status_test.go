package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusJSON(t *testing.T) {
	data, err := json.Marshal(OrderStatusWaitingPayment)
	require.NoError(t, err)
	assert.Equal(t, `"WAITING_PAYMENT"`, string(data))

	var byName OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`"PAID"`), &byName))
	assert.Equal(t, OrderStatusPaid, byName)

	// legacy clients may still post the integer code
	var byCode OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`5`), &byCode))
	assert.Equal(t, OrderStatusCanceled, byCode)

	var bad OrderStatus
	assert.Error(t, json.Unmarshal([]byte(`"SHIPPED_MAYBE"`), &bad))
}

func TestOrderStatusValid(t *testing.T) {
	for s := OrderStatusWaitingPayment; s <= OrderStatusCanceled; s++ {
		assert.True(t, s.Valid(), s.String())
	}
	assert.False(t, OrderStatus(0).Valid())
	assert.False(t, OrderStatus(6).Valid())
}

func TestOrderTotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Quantity: 2, Price: 10.5},
		{Quantity: 1, Price: 4.0},
	}}
	assert.Equal(t, 25.0, order.Total())
}
