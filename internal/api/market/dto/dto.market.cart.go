// Package marketdto - DTO cho domain market.
package marketdto

// CartSetLineInput đầu vào đặt một dòng giỏ hàng trong một bối cảnh giao nhận.
// Quantity = 0 nghĩa là gỡ dòng khỏi giỏ.
type CartSetLineInput struct {
	CenterID      string  `json:"centerId" validate:"required,object_id"`
	Date          string  `json:"date" validate:"required,date_yyyymmdd"`
	Shift         string  `json:"shift" validate:"required,shift"`
	ItemID        string  `json:"itemId" validate:"required,object_id"`
	FarmerOrderID string  `json:"farmerOrderId" validate:"required,object_id"`
	Quantity      float64 `json:"quantity" validate:"gte=0"`
}

// CartUpdateInput đầu vào cập nhật giỏ hàng (CRUD - không dùng trực tiếp,
// giỏ được thao tác qua set-line/clear/checkout).
type CartUpdateInput struct{}
