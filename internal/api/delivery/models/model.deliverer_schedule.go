// Package models - model thuộc domain delivery: ca giao hàng và lịch khả dụng.
package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// ShiftsPerDay số ca cố định trong một ngày
	ShiftsPerDay = 4
	// DaysPerWeek số ngày trong tuần lịch
	DaysPerWeek = 7
	// ScheduleBitmapMax giá trị bitmap lớn nhất hợp lệ (28 bit thấp)
	ScheduleBitmapMax = uint32(1)<<(ShiftsPerDay*DaysPerWeek) - 1
)

// shiftIndexes ánh xạ tên ca -> chỉ số bit trong ngày.
var shiftIndexes = map[string]int{
	"morning":   0,
	"afternoon": 1,
	"evening":   2,
	"night":     3,
}

// ShiftIndex trả về chỉ số ca (0-3) theo tên ca.
func ShiftIndex(shift string) (int, error) {
	idx, ok := shiftIndexes[shift]
	if !ok {
		return 0, fmt.Errorf("shift không hợp lệ: %s", shift)
	}
	return idx, nil
}

// DayIndexFromDate chuyển ngày YYYY-MM-DD thành chỉ số ngày trong tuần,
// với thứ Hai = 0 và Chủ Nhật = 6.
func DayIndexFromDate(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("date không hợp lệ: %s", date)
	}
	// time.Weekday: Sunday = 0, cần dịch về Monday = 0
	return (int(t.Weekday()) + 6) % 7, nil
}

// BitIndex tính vị trí bit trong bitmap từ chỉ số ngày và chỉ số ca.
func BitIndex(dayIdx, shiftIdx int) int {
	return dayIdx*ShiftsPerDay + shiftIdx
}

// BitMaskFor tính mặt nạ bit cho một cặp (date, shift) cụ thể.
func BitMaskFor(date, shift string) (uint32, error) {
	dayIdx, err := DayIndexFromDate(date)
	if err != nil {
		return 0, err
	}
	shiftIdx, err := ShiftIndex(shift)
	if err != nil {
		return 0, err
	}
	return uint32(1) << BitIndex(dayIdx, shiftIdx), nil
}

// DelivererSchedule lưu lịch khả dụng hàng tuần của một người giao hàng dưới
// dạng bitmap 28 bit: 7 ngày × 4 ca, bit = ngày*4 + ca, bật nghĩa là sẵn sàng
// nhận ca đó mọi tuần.
type DelivererSchedule struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DelivererID primitive.ObjectID `json:"delivererId" bson:"delivererId" index:"unique"`
	Bitmap      uint32             `json:"bitmap" bson:"bitmap"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsAvailable kiểm tra người giao hàng có bật khả dụng cho (date, shift) không.
func (s DelivererSchedule) IsAvailable(date, shift string) (bool, error) {
	mask, err := BitMaskFor(date, shift)
	if err != nil {
		return false, err
	}
	return s.Bitmap&mask != 0, nil
}

// SetSlot bật/tắt một ô (ngày, ca) trong bitmap.
func (s *DelivererSchedule) SetSlot(dayIdx int, shift string, available bool) error {
	if dayIdx < 0 || dayIdx >= DaysPerWeek {
		return fmt.Errorf("chỉ số ngày không hợp lệ: %d", dayIdx)
	}
	shiftIdx, err := ShiftIndex(shift)
	if err != nil {
		return err
	}
	mask := uint32(1) << BitIndex(dayIdx, shiftIdx)
	if available {
		s.Bitmap |= mask
	} else {
		s.Bitmap &^= mask
	}
	return nil
}
