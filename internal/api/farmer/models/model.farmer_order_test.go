// Package models - Test máy trạng thái đơn giao nông sản.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{FarmerOrderStatusDraft, FarmerOrderStatusSubmitted},
		{FarmerOrderStatusSubmitted, FarmerOrderStatusAccepted},
		{FarmerOrderStatusSubmitted, FarmerOrderStatusRejected},
		{FarmerOrderStatusAccepted, FarmerOrderStatusFulfilled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s phải hợp lệ", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{FarmerOrderStatusDraft, FarmerOrderStatusAccepted},     // phải submit trước
		{FarmerOrderStatusSubmitted, FarmerOrderStatusFulfilled}, // phải accept trước
		{FarmerOrderStatusRejected, FarmerOrderStatusSubmitted},  // rejected là trạng thái cuối
		{FarmerOrderStatusFulfilled, FarmerOrderStatusAccepted},  // fulfilled là trạng thái cuối
		{FarmerOrderStatusAccepted, FarmerOrderStatusRejected},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s phải bị chặn", tc.from, tc.to)
	}
}

func TestCanDelete(t *testing.T) {
	// Chỉ đơn nháp mới xóa được, đơn đã nộp trở đi giữ lại đối soát
	assert.True(t, CanDelete(FarmerOrderStatusDraft))

	locked := []string{
		FarmerOrderStatusSubmitted,
		FarmerOrderStatusAccepted,
		FarmerOrderStatusRejected,
		FarmerOrderStatusFulfilled,
	}
	for _, status := range locked {
		assert.False(t, CanDelete(status), "đơn %s không được xóa", status)
	}
}
