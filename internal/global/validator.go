package global

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("object_id", validateObjectID)
	_ = Validate.RegisterValidation("shift", validateShift)
	_ = Validate.RegisterValidation("unit_mode", validateUnitMode)
	_ = Validate.RegisterValidation("date_yyyymmdd", validateDateYYYYMMDD)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword kiểm tra mật khẩu mạnh
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// Kiểm tra độ dài tối thiểu
	if len(value) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	// Yêu cầu ít nhất 3 trong 4 điều kiện
	conditions := 0
	if hasUpper {
		conditions++
	}
	if hasLower {
		conditions++
	}
	if hasNumber {
		conditions++
	}
	if hasSpecial {
		conditions++
	}

	return conditions >= 3
}

// validateObjectID kiểm tra chuỗi có phải ObjectID hex hợp lệ không.
// Chuỗi rỗng được coi là hợp lệ (kết hợp với required nếu bắt buộc).
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// validateShift kiểm tra ca làm việc thuộc 4 khung giờ cố định
func validateShift(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "morning", "afternoon", "evening", "night":
		return true
	}
	return false
}

// validateUnitMode kiểm tra chế độ đơn vị bán hàng (theo cân hoặc theo chiếc)
func validateUnitMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "weight" || value == "piece"
}

// validateDateYYYYMMDD kiểm tra chuỗi ngày dạng yyyy-mm-dd
func validateDateYYYYMMDD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
