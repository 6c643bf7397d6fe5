// Package models - Test máy trạng thái đơn hàng khách.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusPicked},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusPicked, OrderStatusDelivering},
		{OrderStatusDelivering, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s phải hợp lệ", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusPicked},     // không được bỏ qua bước confirm
		{OrderStatusPicked, OrderStatusCancelled},   // đã pick thì không hủy được
		{OrderStatusDelivering, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusPending},  // trạng thái cuối
		{OrderStatusCancelled, OrderStatusConfirmed}, // trạng thái cuối
		{OrderStatusConfirmed, OrderStatusDelivered}, // không được bỏ qua pick/delivering
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s phải bị chặn", tc.from, tc.to)
	}

	assert.False(t, CanTransition("unknown", OrderStatusConfirmed))
}
