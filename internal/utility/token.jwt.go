package utility

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// CreateToken tạo JWT token cho người dùng.
// Token chứa userId, thời điểm tạo (hex) và một số ngẫu nhiên để đảm bảo
// mỗi lần đăng nhập sinh ra token khác nhau dù cùng một user.
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := jwt.MapClaims{
		"userId":       userID,
		"time":         timeHex,
		"randomNumber": randomNumber,
		"exp":          time.Now().Add(30 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("không thể ký JWT token: %w", err)
	}
	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã JWT token và trả về claims.
func ParseToken(secret string, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token không hợp lệ")
	}
	return claims, nil
}
