package logisticssvc

import (
	"context"
	"fmt"
	"time"

	basesvc "farm_market/internal/api/base/service"
	catalogsvc "farm_market/internal/api/catalog/service"
	farmermodels "farm_market/internal/api/farmer/models"
	models "farm_market/internal/api/logistics/models"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AmsSnapshotService là cấu trúc chứa các phương thức liên quan đến snapshot
// tồn kho bán (Available Market Stock)
type AmsSnapshotService struct {
	*basesvc.BaseServiceMongoImpl[models.AmsSnapshot]
	farmerOrderCRUD *basesvc.BaseServiceMongoImpl[farmermodels.FarmerOrder]
	itemService     *catalogsvc.ItemService
}

// NewAmsSnapshotService tạo mới AmsSnapshotService
func NewAmsSnapshotService() (*AmsSnapshotService, error) {
	amsCollection, exist := global.RegistryCollections.Get(global.ColNames.AmsSnapshots)
	if !exist {
		return nil, fmt.Errorf("failed to get ams snapshots collection: %v", common.ErrNotFound)
	}
	foCollection, exist := global.RegistryCollections.Get(global.ColNames.FarmerOrders)
	if !exist {
		return nil, fmt.Errorf("failed to get farmer orders collection: %v", common.ErrNotFound)
	}
	itemService, err := catalogsvc.NewItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %v", err)
	}
	return &AmsSnapshotService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AmsSnapshot](amsCollection),
		farmerOrderCRUD:      basesvc.NewBaseServiceMongo[farmermodels.FarmerOrder](foCollection),
		itemService:          itemService,
	}, nil
}

// amsContextFilter filter theo bối cảnh (center, date, shift)
func amsContextFilter(centerID primitive.ObjectID, date, shift string) bson.M {
	return bson.M{"centerId": centerID, "date": date, "shift": shift}
}

// amsLineKey khóa duy nhất của một dòng AMS trong snapshot
func amsLineKey(farmerOrderID, itemID primitive.ObjectID) string {
	return farmerOrderID.Hex() + ":" + itemID.Hex()
}

// GetContext lấy snapshot AMS hiện tại của một bối cảnh
func (s *AmsSnapshotService) GetContext(ctx context.Context, centerID primitive.ObjectID, date, shift string) (models.AmsSnapshot, error) {
	snapshot, err := s.FindOne(ctx, amsContextFilter(centerID, date, shift), nil)
	if err != nil {
		return snapshot, common.ErrNotFound
	}
	return snapshot, nil
}

// Refresh dựng lại snapshot AMS của một bối cảnh từ các đơn nông dân đã tiếp
// nhận (accepted/fulfilled). Lượng đã bán trong snapshot cũ được bảo toàn:
// remaining mới = total mới - đã bán cũ (không âm).
func (s *AmsSnapshotService) Refresh(ctx context.Context, centerID primitive.ObjectID, date, shift string) (*models.AmsSnapshot, error) {
	farmerOrders, err := s.farmerOrderCRUD.Find(ctx, bson.M{
		"centerId":   centerID,
		"pickupDate": date,
		"shift":      shift,
		"status": bson.M{"$in": []string{
			farmermodels.FarmerOrderStatusAccepted,
			farmermodels.FarmerOrderStatusFulfilled,
		}},
	}, nil)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Lượng đã bán theo từng dòng trong snapshot cũ
	sold := make(map[string]float64)
	existing, err := s.FindOne(ctx, amsContextFilter(centerID, date, shift), nil)
	if err == nil {
		for _, line := range existing.Lines {
			sold[amsLineKey(line.FarmerOrderID, line.ItemID)] = line.TotalQuantity - line.RemainingQuantity
		}
	}

	// Cache tên mặt hàng để tránh query lặp trong cùng một lần dựng
	itemNames := make(map[string]string)
	lines := make([]models.AmsLine, 0)
	for _, farmerOrder := range farmerOrders {
		for _, orderLine := range farmerOrder.Lines {
			itemName, ok := itemNames[orderLine.ItemID.Hex()]
			if !ok {
				if item, err := s.itemService.FindOneById(ctx, orderLine.ItemID); err == nil {
					itemName = item.Name
				}
				itemNames[orderLine.ItemID.Hex()] = itemName
			}
			soldQty := sold[amsLineKey(farmerOrder.ID, orderLine.ItemID)]
			remaining := orderLine.Quantity - soldQty
			if remaining < 0 {
				remaining = 0
			}
			lines = append(lines, models.AmsLine{
				ItemID:            orderLine.ItemID,
				FarmerOrderID:     farmerOrder.ID,
				ItemName:          itemName,
				UnitMode:          orderLine.UnitMode,
				PricePerUnit:      orderLine.PricePerUnit,
				TotalQuantity:     orderLine.Quantity,
				RemainingQuantity: remaining,
			})
		}
	}

	snapshot := models.AmsSnapshot{
		CenterID: centerID,
		Date:     date,
		Shift:    shift,
		Lines:    lines,
		BuiltAt:  time.Now().UnixMilli(),
	}
	result, err := s.Upsert(ctx, amsContextFilter(centerID, date, shift), snapshot)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"center_id": centerID.Hex(),
		"date":      date,
		"shift":     shift,
		"lines":     len(lines),
	}).Info("AMS: Làm mới snapshot tồn kho bán")
	return &result, nil
}

// AmsDecrement yêu cầu trừ tồn một dòng AMS khi checkout.
type AmsDecrement struct {
	ItemID        primitive.ObjectID
	FarmerOrderID primitive.ObjectID
	Quantity      float64
}

// applyDecrements kiểm tra và trừ tồn trên các dòng snapshot theo kiểu
// all-or-nothing: toàn bộ decrements được kiểm tra trước, có dòng thiếu hàng
// hoặc không tồn tại thì trả lỗi và không dòng nào bị thay đổi.
func applyDecrements(lines []models.AmsLine, decrements []AmsDecrement) error {
	lineIndex := make(map[string]int, len(lines))
	for i, line := range lines {
		lineIndex[amsLineKey(line.FarmerOrderID, line.ItemID)] = i
	}

	for _, dec := range decrements {
		idx, ok := lineIndex[amsLineKey(dec.FarmerOrderID, dec.ItemID)]
		if !ok {
			return common.NewError(
				common.ErrCodeBusinessStock,
				"Mặt hàng không còn trong kho bán khả dụng",
				common.StatusConflict,
				map[string]interface{}{"itemId": dec.ItemID.Hex(), "farmerOrderId": dec.FarmerOrderID.Hex()},
			)
		}
		if lines[idx].RemainingQuantity < dec.Quantity {
			return common.NewError(
				common.ErrCodeBusinessStock,
				"Số lượng vượt quá tồn kho khả dụng",
				common.StatusConflict,
				map[string]interface{}{
					"itemId":    dec.ItemID.Hex(),
					"remaining": lines[idx].RemainingQuantity,
					"requested": dec.Quantity,
				},
			)
		}
	}

	for _, dec := range decrements {
		idx := lineIndex[amsLineKey(dec.FarmerOrderID, dec.ItemID)]
		lines[idx].RemainingQuantity -= dec.Quantity
	}
	return nil
}

// DecrementLines trừ tồn kho bán cho một danh sách dòng khi checkout.
func (s *AmsSnapshotService) DecrementLines(ctx context.Context, centerID primitive.ObjectID, date, shift string, decrements []AmsDecrement) (*models.AmsSnapshot, error) {
	snapshot, err := s.FindOne(ctx, amsContextFilter(centerID, date, shift), nil)
	if err != nil {
		return nil, common.ErrStockNotAvailable
	}

	if err := applyDecrements(snapshot.Lines, decrements); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, snapshot.ID, &basesvc.UpdateData{Set: map[string]interface{}{
		"lines": snapshot.Lines,
	}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return &updated, nil
}

// RestoreLines hoàn trả tồn kho bán khi đơn hàng khách bị hủy. Remaining không
// vượt quá Total; dòng không còn trong snapshot thì bỏ qua (best effort).
func (s *AmsSnapshotService) RestoreLines(ctx context.Context, centerID primitive.ObjectID, date, shift string, restores []AmsDecrement) error {
	snapshot, err := s.FindOne(ctx, amsContextFilter(centerID, date, shift), nil)
	if err != nil {
		return nil
	}

	lineIndex := make(map[string]int, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		lineIndex[amsLineKey(line.FarmerOrderID, line.ItemID)] = i
	}

	for _, restore := range restores {
		idx, ok := lineIndex[amsLineKey(restore.FarmerOrderID, restore.ItemID)]
		if !ok {
			continue
		}
		snapshot.Lines[idx].RemainingQuantity += restore.Quantity
		if snapshot.Lines[idx].RemainingQuantity > snapshot.Lines[idx].TotalQuantity {
			snapshot.Lines[idx].RemainingQuantity = snapshot.Lines[idx].TotalQuantity
		}
	}

	_, err = s.UpdateById(ctx, snapshot.ID, &basesvc.UpdateData{Set: map[string]interface{}{
		"lines": snapshot.Lines,
	}})
	return common.ConvertMongoError(err)
}
