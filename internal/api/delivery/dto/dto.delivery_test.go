// Package deliverydto - Test validate các DTO của domain delivery.
package deliverydto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farm_market/internal/global"
)

func init() {
	global.InitValidator()
}

func TestDeliveryShiftCreateInputValidate(t *testing.T) {
	valid := DeliveryShiftCreateInput{
		CenterID: "65f1a2b3c4d5e6f7a8b9c0d1",
		Date:     "2026-03-02",
		Shift:    "morning",
		Capacity: 20,
	}
	assert.NoError(t, global.Validate.Struct(valid))

	bad := valid
	bad.CenterID = "xxx"
	assert.Error(t, global.Validate.Struct(bad), "centerId không phải ObjectID")

	bad = valid
	bad.Date = "02-03-2026"
	assert.Error(t, global.Validate.Struct(bad), "date sai định dạng")

	bad = valid
	bad.Shift = "midnight"
	assert.Error(t, global.Validate.Struct(bad), "shift ngoài 4 ca cố định")

	bad = valid
	bad.Capacity = 0
	assert.Error(t, global.Validate.Struct(bad), "capacity phải dương")

	bad = valid
	bad.Capacity = -5
	assert.Error(t, global.Validate.Struct(bad))
}

func TestScheduleSetInputValidate(t *testing.T) {
	assert.NoError(t, global.Validate.Struct(ScheduleSetInput{Bitmap: 0}))
	assert.NoError(t, global.Validate.Struct(ScheduleSetInput{Bitmap: 268435455}), "2^28-1 là giá trị lớn nhất hợp lệ")
	assert.Error(t, global.Validate.Struct(ScheduleSetInput{Bitmap: 268435456}), "bit 28 trở lên không hợp lệ")
}

func TestScheduleSlotInputValidate(t *testing.T) {
	assert.NoError(t, global.Validate.Struct(ScheduleSlotInput{Day: 0, Shift: "morning", Available: true}))
	assert.NoError(t, global.Validate.Struct(ScheduleSlotInput{Day: 6, Shift: "night"}))
	assert.Error(t, global.Validate.Struct(ScheduleSlotInput{Day: 7, Shift: "morning"}), "ngày ngoài tuần")
	assert.Error(t, global.Validate.Struct(ScheduleSlotInput{Day: -1, Shift: "morning"}))
	assert.Error(t, global.Validate.Struct(ScheduleSlotInput{Day: 1, Shift: ""}))
}
