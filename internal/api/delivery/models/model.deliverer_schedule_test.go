// Package models - Test bitmap lịch khả dụng 28 bit (7 ngày × 4 ca).
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftIndex(t *testing.T) {
	cases := map[string]int{
		"morning":   0,
		"afternoon": 1,
		"evening":   2,
		"night":     3,
	}
	for shift, want := range cases {
		got, err := ShiftIndex(shift)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "ShiftIndex(%s)", shift)
	}

	_, err := ShiftIndex("midnight")
	assert.Error(t, err, "ca không tồn tại phải trả lỗi")
}

func TestDayIndexFromDate(t *testing.T) {
	// 2026-01-05 là thứ Hai
	idx, err := DayIndexFromDate("2026-01-05")
	assert.NoError(t, err)
	assert.Equal(t, 0, idx, "thứ Hai phải là ngày 0")

	// 2026-01-11 là Chủ Nhật
	idx, err = DayIndexFromDate("2026-01-11")
	assert.NoError(t, err)
	assert.Equal(t, 6, idx, "Chủ Nhật phải là ngày 6")

	_, err = DayIndexFromDate("11/01/2026")
	assert.Error(t, err, "định dạng khác YYYY-MM-DD phải trả lỗi")
}

func TestBitMaskFor(t *testing.T) {
	// Thứ Hai + morning -> bit 0
	mask, err := BitMaskFor("2026-01-05", "morning")
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), mask)

	// Chủ Nhật + night -> bit 27 (bit cao nhất)
	mask, err = BitMaskFor("2026-01-11", "night")
	assert.NoError(t, err)
	assert.Equal(t, uint32(1)<<27, mask)

	_, err = BitMaskFor("2026-01-05", "midnight")
	assert.Error(t, err)
}

func TestScheduleBitmapMax(t *testing.T) {
	assert.Equal(t, uint32(268435455), ScheduleBitmapMax, "28 bit thấp phải bằng 2^28-1")
}

func TestSetSlotAndIsAvailable(t *testing.T) {
	var s DelivererSchedule

	// Bật thứ Tư (ngày 2) ca evening
	err := s.SetSlot(2, "evening", true)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1)<<(2*ShiftsPerDay+2), s.Bitmap)

	// 2026-01-07 là thứ Tư
	ok, err := s.IsAvailable("2026-01-07", "evening")
	assert.NoError(t, err)
	assert.True(t, ok)

	// Ca khác cùng ngày vẫn tắt
	ok, err = s.IsAvailable("2026-01-07", "morning")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Tắt lại ô vừa bật
	err = s.SetSlot(2, "evening", false)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), s.Bitmap)

	// Tắt ô đã tắt là no-op, không lỗi
	err = s.SetSlot(2, "evening", false)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), s.Bitmap)
}

func TestSetSlotValidation(t *testing.T) {
	var s DelivererSchedule
	assert.Error(t, s.SetSlot(-1, "morning", true), "ngày âm phải trả lỗi")
	assert.Error(t, s.SetSlot(7, "morning", true), "ngày ngoài tuần phải trả lỗi")
	assert.Error(t, s.SetSlot(0, "midnight", true), "ca không tồn tại phải trả lỗi")
	assert.Equal(t, uint32(0), s.Bitmap, "bitmap không được thay đổi khi input sai")
}
