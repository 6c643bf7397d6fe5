// Package notificationsvc - service gửi thông báo trạng thái đơn hàng và lịch sử gửi.
package notificationsvc

import (
	"fmt"

	basesvc "farm_market/internal/api/base/service"
	models "farm_market/internal/api/notification/models"
	"farm_market/internal/common"
	"farm_market/internal/global"
)

// NotificationHistoryService là cấu trúc chứa các phương thức liên quan đến lịch sử thông báo
type NotificationHistoryService struct {
	*basesvc.BaseServiceMongoImpl[models.NotificationHistory]
}

// NewNotificationHistoryService tạo mới NotificationHistoryService
func NewNotificationHistoryService() (*NotificationHistoryService, error) {
	historyCollection, exist := global.RegistryCollections.Get(global.ColNames.NotificationHistory)
	if !exist {
		return nil, fmt.Errorf("failed to get notification history collection: %v", common.ErrNotFound)
	}
	return &NotificationHistoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.NotificationHistory](historyCollection),
	}, nil
}
