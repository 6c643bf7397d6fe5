// Package farmersvc - service đơn giao nông sản.
package farmersvc

import (
	"context"
	"fmt"
	"time"

	basesvc "farm_market/internal/api/base/service"
	catalogsvc "farm_market/internal/api/catalog/service"
	farmerdto "farm_market/internal/api/farmer/dto"
	models "farm_market/internal/api/farmer/models"
	logisticssvc "farm_market/internal/api/logistics/service"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FarmerOrderService là cấu trúc chứa các phương thức liên quan đến đơn giao nông sản
type FarmerOrderService struct {
	*basesvc.BaseServiceMongoImpl[models.FarmerOrder]
	itemService            *catalogsvc.ItemService
	qualityStandardService *catalogsvc.QualityStandardService
	centerService          *logisticssvc.LogisticsCenterService
}

// NewFarmerOrderService tạo mới FarmerOrderService
func NewFarmerOrderService() (*FarmerOrderService, error) {
	foCollection, exist := global.RegistryCollections.Get(global.ColNames.FarmerOrders)
	if !exist {
		return nil, fmt.Errorf("failed to get farmer orders collection: %v", common.ErrNotFound)
	}
	itemService, err := catalogsvc.NewItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %v", err)
	}
	qsService, err := catalogsvc.NewQualityStandardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create quality standard service: %v", err)
	}
	centerService, err := logisticssvc.NewLogisticsCenterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create logistics center service: %v", err)
	}
	return &FarmerOrderService{
		BaseServiceMongoImpl:   basesvc.NewBaseServiceMongo[models.FarmerOrder](foCollection),
		itemService:            itemService,
		qualityStandardService: qsService,
		centerService:          centerService,
	}, nil
}

// buildLines validate và chuẩn hóa các dòng hàng: mặt hàng phải active,
// số lượng hợp lệ theo chế độ đơn vị, không trùng itemId trong cùng đơn.
// Đơn giá và chế độ đơn vị được chụp lại từ danh mục tại thời điểm tạo đơn.
func (s *FarmerOrderService) buildLines(ctx context.Context, inputs []farmerdto.FarmerOrderLineInput) ([]models.FarmerOrderLine, error) {
	seen := make(map[string]bool, len(inputs))
	lines := make([]models.FarmerOrderLine, 0, len(inputs))
	for _, lineInput := range inputs {
		if seen[lineInput.ItemID] {
			return nil, common.NewError(
				common.ErrCodeBusinessOperation,
				"Đơn chứa mặt hàng trùng lặp, mỗi mặt hàng chỉ được xuất hiện một lần",
				common.StatusBadRequest,
				map[string]interface{}{"itemId": lineInput.ItemID},
			)
		}
		seen[lineInput.ItemID] = true

		itemID, err := primitive.ObjectIDFromHex(lineInput.ItemID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "itemId không đúng định dạng", common.StatusBadRequest, err)
		}
		item, err := s.itemService.FindActiveById(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if err := s.itemService.ValidateQuantity(item, lineInput.Quantity); err != nil {
			return nil, err
		}

		lines = append(lines, models.FarmerOrderLine{
			ItemID:       itemID,
			Quantity:     lineInput.Quantity,
			UnitMode:     item.UnitMode,
			PricePerUnit: item.PricePerUnit,
			Measurements: lineInput.Measurements,
		})
	}
	return lines, nil
}

// Create tạo đơn giao nông sản mới ở trạng thái draft
func (s *FarmerOrderService) Create(ctx context.Context, farmerID primitive.ObjectID, input *farmerdto.FarmerOrderCreateInput) (*models.FarmerOrder, error) {
	centerID, err := primitive.ObjectIDFromHex(input.CenterID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "centerId không đúng định dạng", common.StatusBadRequest, err)
	}
	if _, err := s.centerService.FindActiveById(ctx, centerID); err != nil {
		return nil, err
	}

	lines, err := s.buildLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	order := models.FarmerOrder{
		FarmerID:   farmerID,
		CenterID:   centerID,
		PickupDate: input.PickupDate,
		Shift:      input.Shift,
		Lines:      lines,
		Status:     models.FarmerOrderStatusDraft,
	}
	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return &created, nil
}

// findOwnedOrder tìm đơn theo id và xác nhận thuộc về nông dân đang thao tác
func (s *FarmerOrderService) findOwnedOrder(ctx context.Context, id, farmerID primitive.ObjectID) (models.FarmerOrder, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return order, common.ErrNotFound
	}
	if order.FarmerID != farmerID {
		return order, common.NewError(
			common.ErrCodeAuthRole,
			"Đơn không thuộc về nông dân đang thao tác",
			common.StatusForbidden,
			nil,
		)
	}
	return order, nil
}

// Update cập nhật đơn khi còn ở trạng thái draft
func (s *FarmerOrderService) Update(ctx context.Context, id, farmerID primitive.ObjectID, input *farmerdto.FarmerOrderUpdateInput) (*models.FarmerOrder, error) {
	order, err := s.findOwnedOrder(ctx, id, farmerID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.FarmerOrderStatusDraft {
		return nil, common.ErrInvalidTransition
	}

	set := map[string]interface{}{}
	if input.CenterID != "" {
		centerID, err := primitive.ObjectIDFromHex(input.CenterID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "centerId không đúng định dạng", common.StatusBadRequest, err)
		}
		if _, err := s.centerService.FindActiveById(ctx, centerID); err != nil {
			return nil, err
		}
		set["centerId"] = centerID
	}
	if input.PickupDate != "" {
		set["pickupDate"] = input.PickupDate
	}
	if input.Shift != "" {
		set["shift"] = input.Shift
	}
	if len(input.Lines) > 0 {
		lines, err := s.buildLines(ctx, input.Lines)
		if err != nil {
			return nil, err
		}
		set["lines"] = lines
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return &updated, nil
}

// Delete xóa đơn của chính nông dân khi còn ở trạng thái draft.
// Guard quan hệ trên model chặn xóa nếu đơn đã có phân bổ container tham chiếu.
func (s *FarmerOrderService) Delete(ctx context.Context, id, farmerID primitive.ObjectID) error {
	order, err := s.findOwnedOrder(ctx, id, farmerID)
	if err != nil {
		return err
	}
	if !models.CanDelete(order.Status) {
		return common.ErrInvalidTransition
	}
	if err := s.DeleteById(ctx, id); err != nil {
		return common.ConvertMongoError(err)
	}
	logrus.WithField("farmer_order_id", id.Hex()).Info("FarmerOrder: Xóa đơn nháp")
	return nil
}

// transition chuyển trạng thái đơn với guard trên trạng thái hiện tại
func (s *FarmerOrderService) transition(ctx context.Context, order models.FarmerOrder, to string, extraSet map[string]interface{}) (*models.FarmerOrder, error) {
	if !models.CanTransition(order.Status, to) {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển đơn từ trạng thái '%s' sang '%s'", order.Status, to),
			common.StatusBadRequest,
			nil,
		)
	}
	set := map[string]interface{}{"status": to}
	for k, v := range extraSet {
		set[k] = v
	}
	updated, err := s.UpdateById(ctx, order.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.WithFields(logrus.Fields{
		"farmer_order_id": order.ID.Hex(),
		"from":            order.Status,
		"to":              to,
	}).Info("FarmerOrder: Chuyển trạng thái đơn")
	return &updated, nil
}

// Submit nông dân gửi đơn draft lên trung tâm
func (s *FarmerOrderService) Submit(ctx context.Context, id, farmerID primitive.ObjectID) (*models.FarmerOrder, error) {
	order, err := s.findOwnedOrder(ctx, id, farmerID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, order, models.FarmerOrderStatusSubmitted, map[string]interface{}{
		"submittedAt": time.Now().UnixMilli(),
	})
}

// Accept trung tâm tiếp nhận đơn: đối chiếu số liệu kiểm định với các bộ tiêu chuẩn
// chất lượng của từng mặt hàng. Nếu có rule không đạt, đơn không được tiếp nhận
// và kết quả kiểm định được trả về trong details.
func (s *FarmerOrderService) Accept(ctx context.Context, id primitive.ObjectID, input *farmerdto.FarmerOrderAcceptInput) (*models.FarmerOrder, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if order.Status != models.FarmerOrderStatusSubmitted {
		return nil, common.ErrInvalidTransition
	}

	// Gộp số liệu kiểm định từ input vào các dòng hàng
	allChecks := make([]models.QualityCheckResult, 0)
	allPassed := true
	for i, line := range order.Lines {
		measurements := line.Measurements
		if input != nil && input.Measurements != nil {
			if m, ok := input.Measurements[line.ItemID.Hex()]; ok {
				measurements = m
				order.Lines[i].Measurements = m
			}
		}

		item, err := s.itemService.FindOneById(ctx, line.ItemID)
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		results, passed, err := s.qualityStandardService.Evaluate(ctx, item.QualityStandardIDs, measurements)
		if err != nil {
			return nil, err
		}
		if !passed {
			allPassed = false
		}
		for _, result := range results {
			allChecks = append(allChecks, models.QualityCheckResult{
				ItemID:       line.ItemID,
				StandardName: result.StandardName,
				Field:        result.Field,
				Measured:     result.Measured,
				Min:          result.Min,
				Max:          result.Max,
				Passed:       result.Passed,
			})
		}
	}

	if !allPassed {
		// Lưu kết quả kiểm định để CS xem xét, nhưng không tiếp nhận đơn
		_, _ = s.UpdateById(ctx, id, &basesvc.UpdateData{Set: map[string]interface{}{
			"qualityChecks": allChecks,
			"lines":         order.Lines,
		}})
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Đơn không đạt tiêu chuẩn chất lượng, không thể tiếp nhận",
			common.StatusConflict,
			map[string]interface{}{"qualityChecks": allChecks},
		)
	}

	return s.transition(ctx, order, models.FarmerOrderStatusAccepted, map[string]interface{}{
		"qualityChecks": allChecks,
		"lines":         order.Lines,
		"decidedAt":     time.Now().UnixMilli(),
	})
}

// Reject trung tâm từ chối đơn với lý do bắt buộc
func (s *FarmerOrderService) Reject(ctx context.Context, id primitive.ObjectID, note string) (*models.FarmerOrder, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return s.transition(ctx, order, models.FarmerOrderStatusRejected, map[string]interface{}{
		"rejectNote": note,
		"decidedAt":  time.Now().UnixMilli(),
	})
}

// Fulfill đánh dấu đơn đã được nông dân giao đủ hàng tại trung tâm
func (s *FarmerOrderService) Fulfill(ctx context.Context, id primitive.ObjectID) (*models.FarmerOrder, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return s.transition(ctx, order, models.FarmerOrderStatusFulfilled, map[string]interface{}{
		"fulfilledAt": time.Now().UnixMilli(),
	})
}
