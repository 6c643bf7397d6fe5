// Package router đăng ký route cho lịch sử thông báo.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	notificationhdl "farm_market/internal/api/notification/handler"
	apirouter "farm_market/internal/api/router"
)

// Register đăng ký route notification lên v1. Lịch sử thông báo chỉ đọc,
// hệ thống tự ghi qua Notifier.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	historyHandler, err := notificationhdl.NewNotificationHistoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification history handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/notification-history", historyHandler, apirouter.ReadOnlyConfig, "NotificationHistory")

	return nil
}
