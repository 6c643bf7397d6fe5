// Package notificationhdl - handler cho lịch sử thông báo (chỉ đọc).
package notificationhdl

import (
	"fmt"

	basehdl "farm_market/internal/api/base/handler"
	models "farm_market/internal/api/notification/models"
	notificationsvc "farm_market/internal/api/notification/service"
)

// noWriteInput lịch sử thông báo do hệ thống tự ghi, không có input ghi từ API.
type noWriteInput struct{}

// NotificationHistoryHandler xử lý các request đọc lịch sử thông báo
type NotificationHistoryHandler struct {
	*basehdl.BaseHandler[models.NotificationHistory, noWriteInput, noWriteInput]
}

// NewNotificationHistoryHandler tạo instance mới của NotificationHistoryHandler
func NewNotificationHistoryHandler() (*NotificationHistoryHandler, error) {
	historyService, err := notificationsvc.NewNotificationHistoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification history service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.NotificationHistory, noWriteInput, noWriteInput](historyService)
	return &NotificationHistoryHandler{
		BaseHandler: baseHandler,
	}, nil
}
