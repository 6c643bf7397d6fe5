// Package logisticssvc - Test kiểm tra trừ tồn kho bán all-or-nothing.
package logisticssvc

import (
	"testing"

	models "farm_market/internal/api/logistics/models"
	"farm_market/internal/common"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func amsTestLines() ([]models.AmsLine, primitive.ObjectID, primitive.ObjectID, primitive.ObjectID) {
	itemA := primitive.NewObjectID()
	itemB := primitive.NewObjectID()
	farmerOrderID := primitive.NewObjectID()
	lines := []models.AmsLine{
		{ItemID: itemA, FarmerOrderID: farmerOrderID, TotalQuantity: 50, RemainingQuantity: 30},
		{ItemID: itemB, FarmerOrderID: farmerOrderID, TotalQuantity: 10, RemainingQuantity: 10},
	}
	return lines, itemA, itemB, farmerOrderID
}

func TestApplyDecrements(t *testing.T) {
	lines, itemA, itemB, foID := amsTestLines()

	err := applyDecrements(lines, []AmsDecrement{
		{ItemID: itemA, FarmerOrderID: foID, Quantity: 12},
		{ItemID: itemB, FarmerOrderID: foID, Quantity: 10},
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(18), lines[0].RemainingQuantity)
	assert.Equal(t, float64(0), lines[1].RemainingQuantity, "mua hết tồn vẫn hợp lệ")
}

func TestApplyDecrementsRejectsOverStock(t *testing.T) {
	lines, itemA, itemB, foID := amsTestLines()

	// Dòng itemB vượt tồn: cả batch bị từ chối, itemA cũng không bị trừ
	err := applyDecrements(lines, []AmsDecrement{
		{ItemID: itemA, FarmerOrderID: foID, Quantity: 5},
		{ItemID: itemB, FarmerOrderID: foID, Quantity: 11},
	})
	assert.Error(t, err)
	var appErr *common.Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.ErrCodeBusinessStock, appErr.Code)

	assert.Equal(t, float64(30), lines[0].RemainingQuantity, "không dòng nào bị thay đổi khi batch bị từ chối")
	assert.Equal(t, float64(10), lines[1].RemainingQuantity)
}

func TestApplyDecrementsRejectsUnknownLine(t *testing.T) {
	lines, itemA, _, _ := amsTestLines()

	// farmerOrderId lạ: dòng không tồn tại trong snapshot
	err := applyDecrements(lines, []AmsDecrement{
		{ItemID: itemA, FarmerOrderID: primitive.NewObjectID(), Quantity: 1},
	})
	assert.Error(t, err)
	assert.Equal(t, float64(30), lines[0].RemainingQuantity)
}
