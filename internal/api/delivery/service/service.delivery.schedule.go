// Package deliverysvc - service lập kế hoạch ca giao hàng và lịch khả dụng.
package deliverysvc

import (
	"context"
	"fmt"

	basesvc "farm_market/internal/api/base/service"
	models "farm_market/internal/api/delivery/models"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DelivererScheduleService là cấu trúc chứa các phương thức liên quan đến
// lịch khả dụng hàng tuần của người giao hàng
type DelivererScheduleService struct {
	*basesvc.BaseServiceMongoImpl[models.DelivererSchedule]
}

// NewDelivererScheduleService tạo mới DelivererScheduleService
func NewDelivererScheduleService() (*DelivererScheduleService, error) {
	scheduleCollection, exist := global.RegistryCollections.Get(global.ColNames.DelivererSchedules)
	if !exist {
		return nil, fmt.Errorf("failed to get deliverer schedules collection: %v", common.ErrNotFound)
	}
	return &DelivererScheduleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DelivererSchedule](scheduleCollection),
	}, nil
}

// GetByDeliverer lấy lịch của một người giao; trả về lịch rỗng (bitmap 0)
// nếu chưa đăng ký.
func (s *DelivererScheduleService) GetByDeliverer(ctx context.Context, delivererID primitive.ObjectID) (models.DelivererSchedule, error) {
	schedule, err := s.FindOne(ctx, bson.M{"delivererId": delivererID}, nil)
	if err != nil {
		return models.DelivererSchedule{DelivererID: delivererID, Bitmap: 0}, nil
	}
	return schedule, nil
}

// SetBitmap ghi toàn bộ bitmap lịch của người giao (upsert).
func (s *DelivererScheduleService) SetBitmap(ctx context.Context, delivererID primitive.ObjectID, bitmap uint32) (*models.DelivererSchedule, error) {
	if bitmap > models.ScheduleBitmapMax {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Bitmap lịch vượt quá 28 bit cho phép",
			common.StatusBadRequest,
			map[string]interface{}{"bitmap": bitmap},
		)
	}
	schedule, err := s.Upsert(ctx, bson.M{"delivererId": delivererID}, models.DelivererSchedule{
		DelivererID: delivererID,
		Bitmap:      bitmap,
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"deliverer_id": delivererID.Hex(),
		"bitmap":       bitmap,
	}).Info("Delivery: Cập nhật lịch khả dụng người giao hàng")
	return &schedule, nil
}

// SetSlot bật/tắt một ô (ngày, ca) trong lịch của người giao.
func (s *DelivererScheduleService) SetSlot(ctx context.Context, delivererID primitive.ObjectID, dayIdx int, shift string, available bool) (*models.DelivererSchedule, error) {
	schedule, err := s.GetByDeliverer(ctx, delivererID)
	if err != nil {
		return nil, err
	}
	if err := schedule.SetSlot(dayIdx, shift, available); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil)
	}
	return s.SetBitmap(ctx, delivererID, schedule.Bitmap)
}

// FindAvailable tìm các lịch có bit bật cho (date, shift) — tức là những
// người giao sẵn sàng nhận ca đó. Lọc bằng toán tử $bitsAllSet trên bitmap.
func (s *DelivererScheduleService) FindAvailable(ctx context.Context, date, shift string) ([]models.DelivererSchedule, error) {
	mask, err := models.BitMaskFor(date, shift)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil)
	}
	schedules, err := s.Find(ctx, bson.M{"bitmap": bson.M{"$bitsAllSet": int64(mask)}}, nil)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return schedules, nil
}
