// Package ordersvc - Test bất biến dòng đơn hàng.
package ordersvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"farm_market/internal/api/order/models"
	"farm_market/internal/common"
)

func TestValidateLines(t *testing.T) {
	itemA := primitive.NewObjectID()
	itemB := primitive.NewObjectID()
	foA := primitive.NewObjectID()
	foB := primitive.NewObjectID()

	// Không có dòng nào: hợp lệ (Create chặn riêng đơn rỗng)
	assert.NoError(t, ValidateLines(nil))

	// Các dòng khác nhau: hợp lệ
	assert.NoError(t, ValidateLines([]models.OrderLine{
		{ItemID: itemA, FarmerOrderID: foA, Quantity: 2},
		{ItemID: itemB, FarmerOrderID: foA, Quantity: 1},
		{ItemID: itemA, FarmerOrderID: foB, Quantity: 3},
	}))

	// Trùng cặp (farmerOrderId, itemId): phải trả lỗi
	err := ValidateLines([]models.OrderLine{
		{ItemID: itemA, FarmerOrderID: foA, Quantity: 2},
		{ItemID: itemA, FarmerOrderID: foA, Quantity: 5},
	})
	assert.ErrorIs(t, err, common.ErrDuplicateOrderLine)
}
