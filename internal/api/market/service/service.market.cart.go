// Package marketsvc - service giỏ hàng và checkout.
package marketsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "farm_market/internal/api/base/service"
	catalogsvc "farm_market/internal/api/catalog/service"
	logisticssvc "farm_market/internal/api/logistics/service"
	marketdto "farm_market/internal/api/market/dto"
	models "farm_market/internal/api/market/models"
	ordermodels "farm_market/internal/api/order/models"
	ordersvc "farm_market/internal/api/order/service"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartService là cấu trúc chứa các phương thức liên quan đến giỏ hàng
type CartService struct {
	*basesvc.BaseServiceMongoImpl[models.Cart]
	itemService  *catalogsvc.ItemService
	amsService   *logisticssvc.AmsSnapshotService
	orderService *ordersvc.OrderService
}

// NewCartService tạo mới CartService
func NewCartService() (*CartService, error) {
	cartCollection, exist := global.RegistryCollections.Get(global.ColNames.Carts)
	if !exist {
		return nil, fmt.Errorf("failed to get carts collection: %v", common.ErrNotFound)
	}
	itemService, err := catalogsvc.NewItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %v", err)
	}
	amsService, err := logisticssvc.NewAmsSnapshotService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ams snapshot service: %v", err)
	}
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	return &CartService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Cart](cartCollection),
		itemService:          itemService,
		amsService:           amsService,
		orderService:         orderService,
	}, nil
}

// cartOrEmpty ánh xạ kết quả tìm giỏ hàng: chưa có giỏ là trạng thái hợp lệ
// (giỏ rỗng), các lỗi khác (mất kết nối, decode hỏng) được trả lên cho caller.
func cartOrEmpty(customerID primitive.ObjectID, cart models.Cart, err error) (models.Cart, error) {
	if err == nil {
		return cart, nil
	}
	if errors.Is(err, common.ErrNotFound) {
		return models.Cart{CustomerID: customerID, Lines: []models.CartLine{}}, nil
	}
	return models.Cart{}, common.ConvertMongoError(err)
}

// GetCart lấy giỏ hàng hiện tại của khách; trả về giỏ rỗng nếu chưa có.
func (s *CartService) GetCart(ctx context.Context, customerID primitive.ObjectID) (models.Cart, error) {
	cart, err := s.FindOne(ctx, bson.M{"customerId": customerID}, nil)
	return cartOrEmpty(customerID, cart, err)
}

// SetLine đặt một dòng giỏ trong bối cảnh (center, date, shift). Quantity = 0
// gỡ dòng. Nếu bối cảnh khác với giỏ hiện tại, giỏ cũ bị xóa và dòng mới được
// đặt vào giỏ thuộc bối cảnh mới (kèm cờ contextChanged cho client).
func (s *CartService) SetLine(ctx context.Context, customerID primitive.ObjectID, input *marketdto.CartSetLineInput) (*models.Cart, bool, error) {
	centerID, err := primitive.ObjectIDFromHex(input.CenterID)
	if err != nil {
		return nil, false, common.NewError(common.ErrCodeValidationFormat, "centerId không đúng định dạng", common.StatusBadRequest, err)
	}
	itemID, err := primitive.ObjectIDFromHex(input.ItemID)
	if err != nil {
		return nil, false, common.NewError(common.ErrCodeValidationFormat, "itemId không đúng định dạng", common.StatusBadRequest, err)
	}
	farmerOrderID, err := primitive.ObjectIDFromHex(input.FarmerOrderID)
	if err != nil {
		return nil, false, common.NewError(common.ErrCodeValidationFormat, "farmerOrderId không đúng định dạng", common.StatusBadRequest, err)
	}

	cart, cartErr := s.FindOne(ctx, bson.M{"customerId": customerID}, nil)
	contextChanged := false
	if cartErr == nil && !cart.SameContext(centerID, input.Date, input.Shift) {
		// Đổi bối cảnh giao nhận: giỏ cũ bị vô hiệu
		contextChanged = true
		cart.Lines = nil
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID.Hex(),
			"center_id":   input.CenterID,
			"date":        input.Date,
			"shift":       input.Shift,
		}).Info("Cart: Bối cảnh giao nhận thay đổi, xóa giỏ cũ")
	}

	// Tìm dòng hiện có theo khóa (itemId, farmerOrderId)
	lineIdx := -1
	for i, line := range cart.Lines {
		if line.ItemID == itemID && line.FarmerOrderID == farmerOrderID {
			lineIdx = i
			break
		}
	}

	if input.Quantity == 0 {
		// Gỡ dòng khỏi giỏ
		if lineIdx >= 0 {
			cart.Lines = append(cart.Lines[:lineIdx], cart.Lines[lineIdx+1:]...)
		}
	} else {
		// Validate số lượng theo chế độ đơn vị và tồn kho AMS hiện tại
		item, err := s.itemService.FindActiveById(ctx, itemID)
		if err != nil {
			return nil, contextChanged, err
		}
		if err := s.itemService.ValidateQuantity(item, input.Quantity); err != nil {
			return nil, contextChanged, err
		}

		snapshot, err := s.amsService.GetContext(ctx, centerID, input.Date, input.Shift)
		if err != nil {
			return nil, contextChanged, common.ErrStockNotAvailable
		}
		var amsLine *struct {
			remaining float64
			price     float64
			unitMode  string
		}
		for _, l := range snapshot.Lines {
			if l.ItemID == itemID && l.FarmerOrderID == farmerOrderID {
				amsLine = &struct {
					remaining float64
					price     float64
					unitMode  string
				}{l.RemainingQuantity, l.PricePerUnit, l.UnitMode}
				break
			}
		}
		if amsLine == nil {
			return nil, contextChanged, common.ErrStockNotAvailable
		}
		if input.Quantity > amsLine.remaining {
			return nil, contextChanged, common.NewError(
				common.ErrCodeBusinessStock,
				"Số lượng vượt quá tồn kho khả dụng",
				common.StatusConflict,
				map[string]interface{}{"remaining": amsLine.remaining, "requested": input.Quantity},
			)
		}

		newLine := models.CartLine{
			ItemID:        itemID,
			FarmerOrderID: farmerOrderID,
			ItemName:      item.Name,
			Quantity:      input.Quantity,
			UnitMode:      amsLine.unitMode,
			UnitPrice:     amsLine.price,
		}
		if lineIdx >= 0 {
			cart.Lines[lineIdx] = newLine
		} else {
			cart.Lines = append(cart.Lines, newLine)
		}
	}

	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	updatedCart := models.Cart{
		CustomerID: customerID,
		CenterID:   centerID,
		Date:       input.Date,
		Shift:      input.Shift,
		Lines:      cart.Lines,
	}
	result, err := s.Upsert(ctx, bson.M{"customerId": customerID}, updatedCart)
	if err != nil {
		return nil, contextChanged, common.ConvertMongoError(err)
	}
	return &result, contextChanged, nil
}

// Clear xóa toàn bộ giỏ hàng của khách
func (s *CartService) Clear(ctx context.Context, customerID primitive.ObjectID) error {
	_, err := s.DeleteMany(ctx, bson.M{"customerId": customerID})
	return common.ConvertMongoError(err)
}

// Checkout chuyển giỏ thành đơn hàng: validate toàn bộ dòng với snapshot AMS,
// trừ tồn all-or-nothing, tạo Order với mã nhận hàng, rồi xóa giỏ.
func (s *CartService) Checkout(ctx context.Context, customerID primitive.ObjectID) (*ordermodels.Order, error) {
	cart, err := s.FindOne(ctx, bson.M{"customerId": customerID}, nil)
	if err != nil || len(cart.Lines) == 0 {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Giỏ hàng trống, không thể đặt hàng",
			common.StatusBadRequest,
			nil,
		)
	}

	orderLines := make([]ordermodels.OrderLine, 0, len(cart.Lines))
	decrements := make([]logisticssvc.AmsDecrement, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		orderLines = append(orderLines, ordermodels.OrderLine{
			ItemID:        line.ItemID,
			FarmerOrderID: line.FarmerOrderID,
			ItemName:      line.ItemName,
			Quantity:      line.Quantity,
			UnitMode:      line.UnitMode,
			UnitPrice:     line.UnitPrice,
		})
		decrements = append(decrements, logisticssvc.AmsDecrement{
			ItemID:        line.ItemID,
			FarmerOrderID: line.FarmerOrderID,
			Quantity:      line.Quantity,
		})
	}
	if err := ordersvc.ValidateLines(orderLines); err != nil {
		return nil, err
	}

	// Trừ tồn trước, tạo đơn sau; nếu tạo đơn thất bại thì hoàn trả tồn
	if _, err := s.amsService.DecrementLines(ctx, cart.CenterID, cart.Date, cart.Shift, decrements); err != nil {
		return nil, err
	}
	order, err := s.orderService.Create(ctx, customerID, cart.CenterID, cart.Date, cart.Shift, orderLines)
	if err != nil {
		_ = s.amsService.RestoreLines(ctx, cart.CenterID, cart.Date, cart.Shift, decrements)
		return nil, err
	}

	if err := s.Clear(ctx, customerID); err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID.Hex(),
			"error":       err.Error(),
		}).Warn("Cart: Không thể xóa giỏ sau checkout")
	}
	return order, nil
}
