// Package global - Test các custom validator của domain.
package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func init() {
	InitValidator()
}

func TestValidateShift(t *testing.T) {
	for _, shift := range []string{"morning", "afternoon", "evening", "night"} {
		assert.NoError(t, Validate.Var(shift, "shift"), "ca %s phải hợp lệ", shift)
	}
	assert.Error(t, Validate.Var("midnight", "shift"))
	assert.Error(t, Validate.Var("Morning", "shift"), "tên ca phân biệt hoa thường")
	assert.Error(t, Validate.Var("", "required,shift"))
}

func TestValidateUnitMode(t *testing.T) {
	assert.NoError(t, Validate.Var("weight", "unit_mode"))
	assert.NoError(t, Validate.Var("piece", "unit_mode"))
	assert.Error(t, Validate.Var("box", "unit_mode"))
}

func TestValidateDateYYYYMMDD(t *testing.T) {
	assert.NoError(t, Validate.Var("2026-03-02", "date_yyyymmdd"))
	assert.NoError(t, Validate.Var("", "date_yyyymmdd"), "chuỗi rỗng hợp lệ, kết hợp required nếu bắt buộc")
	assert.Error(t, Validate.Var("02/03/2026", "date_yyyymmdd"))
	assert.Error(t, Validate.Var("2026-02-30", "date_yyyymmdd"), "ngày không tồn tại")
}

func TestValidateObjectID(t *testing.T) {
	assert.NoError(t, Validate.Var("65f1a2b3c4d5e6f7a8b9c0d1", "object_id"))
	assert.NoError(t, Validate.Var("", "object_id"), "chuỗi rỗng hợp lệ, kết hợp required nếu bắt buộc")
	assert.Error(t, Validate.Var("not-an-object-id", "object_id"))
	assert.Error(t, Validate.Var("65f1a2b3c4d5e6f7a8b9c0d", "object_id"), "thiếu 1 ký tự hex")
}

func TestValidateStrongPassword(t *testing.T) {
	assert.NoError(t, Validate.Var("Abcdef12", "strong_password"), "hoa + thường + số đủ 3/4 điều kiện")
	assert.NoError(t, Validate.Var("abcdef1!", "strong_password"), "thường + số + ký tự đặc biệt")
	assert.Error(t, Validate.Var("Ab1!", "strong_password"), "quá ngắn")
	assert.Error(t, Validate.Var("abcdefgh", "strong_password"), "chỉ 1/4 điều kiện")
	assert.Error(t, Validate.Var("abcdefg1", "strong_password"), "chỉ 2/4 điều kiện")
}

func TestValidateNoXSS(t *testing.T) {
	assert.NoError(t, Validate.Var("Cà chua bi Đà Lạt", "no_xss"))
	assert.Error(t, Validate.Var("<script>alert(1)</script>", "no_xss"))
	assert.Error(t, Validate.Var("a onerror=alert(1)", "no_xss"))
	assert.Error(t, Validate.Var("JAVASCRIPT:void(0)", "no_xss"), "pattern không phân biệt hoa thường")
}
