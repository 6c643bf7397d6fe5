// Package marketsvc - Test ánh xạ kết quả tìm giỏ hàng.
package marketsvc

import (
	"testing"

	models "farm_market/internal/api/market/models"
	"farm_market/internal/common"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartOrEmpty(t *testing.T) {
	customerID := primitive.NewObjectID()

	// Có giỏ: trả về nguyên giỏ
	existing := models.Cart{CustomerID: customerID, Lines: []models.CartLine{{Quantity: 2}}}
	cart, err := cartOrEmpty(customerID, existing, nil)
	assert.NoError(t, err)
	assert.Equal(t, existing, cart)

	// Chưa có giỏ: trạng thái hợp lệ, trả giỏ rỗng của khách
	cart, err = cartOrEmpty(customerID, models.Cart{}, common.ErrNotFound)
	assert.NoError(t, err)
	assert.Equal(t, customerID, cart.CustomerID)
	assert.Empty(t, cart.Lines)
	assert.NotNil(t, cart.Lines, "giỏ rỗng serialize thành mảng rỗng, không phải null")
}

func TestCartOrEmptyPropagatesFailure(t *testing.T) {
	customerID := primitive.NewObjectID()

	// Lỗi khác "chưa có giỏ" (mất kết nối, decode hỏng) không được nuốt thành giỏ rỗng
	dbErr := common.NewError(common.ErrCodeDatabase, "Mất kết nối database", common.StatusInternalServerError, nil)
	_, err := cartOrEmpty(customerID, models.Cart{}, dbErr)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}
