package utility

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu thô với hash đã lưu.
// Trả về true nếu khớp.
func ComparePassword(hashed string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
