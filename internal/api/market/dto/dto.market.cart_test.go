// Package marketdto - Test validate DTO giỏ hàng.
package marketdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farm_market/internal/global"
)

func init() {
	global.InitValidator()
}

func TestCartSetLineInputValidate(t *testing.T) {
	valid := CartSetLineInput{
		CenterID:      "65f1a2b3c4d5e6f7a8b9c0d1",
		Date:          "2026-03-02",
		Shift:         "afternoon",
		ItemID:        "65f1a2b3c4d5e6f7a8b9c0d2",
		FarmerOrderID: "65f1a2b3c4d5e6f7a8b9c0d3",
		Quantity:      2.5,
	}
	assert.NoError(t, global.Validate.Struct(valid))

	// Quantity = 0 hợp lệ: nghĩa là gỡ dòng khỏi giỏ
	zero := valid
	zero.Quantity = 0
	assert.NoError(t, global.Validate.Struct(zero))

	bad := valid
	bad.Quantity = -1
	assert.Error(t, global.Validate.Struct(bad), "số lượng âm phải bị chặn")

	bad = valid
	bad.ItemID = "not-hex"
	assert.Error(t, global.Validate.Struct(bad))

	bad = valid
	bad.Shift = "noon"
	assert.Error(t, global.Validate.Struct(bad))

	bad = valid
	bad.Date = ""
	assert.Error(t, global.Validate.Struct(bad), "thiếu date")
}
