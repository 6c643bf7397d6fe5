// Package farmerdto - Test validate DTO đơn giao nông sản.
package farmerdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farm_market/internal/global"
)

func init() {
	global.InitValidator()
}

func TestFarmerOrderCreateInputValidate(t *testing.T) {
	valid := FarmerOrderCreateInput{
		CenterID:   "65f1a2b3c4d5e6f7a8b9c0d1",
		PickupDate: "2026-03-02",
		Shift:      "morning",
		Lines: []FarmerOrderLineInput{
			{ItemID: "65f1a2b3c4d5e6f7a8b9c0d2", Quantity: 10},
		},
	}
	assert.NoError(t, global.Validate.Struct(valid))

	bad := valid
	bad.Lines = nil
	assert.Error(t, global.Validate.Struct(bad), "đơn phải có ít nhất 1 dòng")

	bad = valid
	bad.Lines = []FarmerOrderLineInput{{ItemID: "65f1a2b3c4d5e6f7a8b9c0d2", Quantity: 0}}
	assert.Error(t, global.Validate.Struct(bad), "số lượng dòng phải dương")

	bad = valid
	bad.Lines = []FarmerOrderLineInput{{ItemID: "65f1a2b3c4d5e6f7a8b9c0d2", Quantity: -2}}
	assert.Error(t, global.Validate.Struct(bad))

	bad = valid
	bad.PickupDate = "2026/03/02"
	assert.Error(t, global.Validate.Struct(bad))

	bad = valid
	bad.Shift = "dawn"
	assert.Error(t, global.Validate.Struct(bad))
}

func TestFarmerOrderRejectInputValidate(t *testing.T) {
	assert.NoError(t, global.Validate.Struct(FarmerOrderRejectInput{Note: "Hàng không đạt tiêu chuẩn"}))
	assert.Error(t, global.Validate.Struct(FarmerOrderRejectInput{}), "từ chối bắt buộc có lý do")
}
