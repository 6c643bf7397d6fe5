// Package models - Test so khớp bối cảnh giao nhận của giỏ hàng.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSameContext(t *testing.T) {
	centerA := primitive.NewObjectID()
	centerB := primitive.NewObjectID()

	cart := Cart{
		CenterID: centerA,
		Date:     "2026-03-02",
		Shift:    "morning",
	}

	assert.True(t, cart.SameContext(centerA, "2026-03-02", "morning"))

	// Khác bất kỳ thành phần nào của bối cảnh đều coi là đổi bối cảnh
	assert.False(t, cart.SameContext(centerB, "2026-03-02", "morning"), "khác trung tâm")
	assert.False(t, cart.SameContext(centerA, "2026-03-03", "morning"), "khác ngày")
	assert.False(t, cart.SameContext(centerA, "2026-03-02", "evening"), "khác ca")
}
