// Package utility - Test các helper dùng chung.
package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"morning", "night"}, "night"))
	assert.False(t, Contains([]string{"morning", "night"}, "noon"))
	assert.False(t, Contains([]int{}, 1))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Unique([]int{1, 2, 2, 3, 1}))
	assert.Empty(t, Unique([]string{}))
}

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("Abcdef12!")
	assert.NoError(t, err)
	assert.NotEqual(t, "Abcdef12!", hashed)

	assert.True(t, ComparePassword(hashed, "Abcdef12!"))
	assert.False(t, ComparePassword(hashed, "sai-mat-khau"))
}

func TestString2ObjectID(t *testing.T) {
	id := String2ObjectID("65f1a2b3c4d5e6f7a8b9c0d1")
	assert.Equal(t, "65f1a2b3c4d5e6f7a8b9c0d1", id.Hex())
	assert.True(t, String2ObjectID("khong-phai-hex").IsZero(), "chuỗi không hợp lệ trả về NilObjectID")
}
