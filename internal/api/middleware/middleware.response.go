// Package middleware chứa các middleware dùng chung cho API (auth, response).
package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"farm_market/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse chuẩn hóa error response cho middleware.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
