package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"farm_market/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Đảm bảo mọi response đều có charset=utf-8 để hiển thị tiếng Việt đúng cách.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// SafeHandlerWrapper wrapper để xử lý errors (dùng bởi domain handler không embed BaseHandler)
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	return nil
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	WriteResponse(c, data, err)
}

// WriteResponse chuẩn hóa response cho cả base handler và các handler domain
func WriteResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
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
		// Không phải custom error, trả về internal server error
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
