// Package orderdto - DTO cho domain order.
package orderdto

// OrderCancelInput đầu vào hủy đơn hàng, bắt buộc có lý do.
type OrderCancelInput struct {
	Note string `json:"note" validate:"required"`
}

// OrderCreateInput đầu vào tạo đơn (CRUD - chỉ dùng nội bộ, đơn thường được
// tạo qua checkout giỏ hàng).
type OrderCreateInput struct {
	CenterID string `json:"centerId" validate:"required,object_id"`
	Date     string `json:"date" validate:"required,date_yyyymmdd"`
	Shift    string `json:"shift" validate:"required,shift"`
}

// OrderUpdateInput đầu vào cập nhật đơn (CRUD).
type OrderUpdateInput struct {
	Status string `json:"status"`
}
