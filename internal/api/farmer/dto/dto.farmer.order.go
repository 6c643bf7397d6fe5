// Package farmerdto - DTO cho domain farmer.
package farmerdto

// FarmerOrderLineInput là một dòng hàng trong đơn giao nông sản.
type FarmerOrderLineInput struct {
	ItemID       string             `json:"itemId" validate:"required,object_id"`
	Quantity     float64            `json:"quantity" validate:"required,gt=0"`
	Measurements map[string]float64 `json:"measurements"`
}

// FarmerOrderCreateInput đầu vào tạo đơn giao nông sản (trạng thái draft).
type FarmerOrderCreateInput struct {
	CenterID   string                 `json:"centerId" validate:"required,object_id"`
	PickupDate string                 `json:"pickupDate" validate:"required,date_yyyymmdd"`
	Shift      string                 `json:"shift" validate:"required,shift"`
	Lines      []FarmerOrderLineInput `json:"lines" validate:"required,min=1,dive"`
}

// FarmerOrderUpdateInput đầu vào cập nhật đơn (chỉ khi còn draft).
type FarmerOrderUpdateInput struct {
	CenterID   string                 `json:"centerId" validate:"omitempty,object_id"`
	PickupDate string                 `json:"pickupDate" validate:"omitempty,date_yyyymmdd"`
	Shift      string                 `json:"shift" validate:"omitempty,shift"`
	Lines      []FarmerOrderLineInput `json:"lines" validate:"omitempty,min=1,dive"`
}

// FarmerOrderRejectInput đầu vào từ chối đơn, bắt buộc có lý do.
type FarmerOrderRejectInput struct {
	Note string `json:"note" validate:"required"`
}

// FarmerOrderAcceptInput đầu vào tiếp nhận đơn: số liệu kiểm định theo dòng hàng.
// Key của Measurements là itemId hex, value là các giá trị đo theo field.
type FarmerOrderAcceptInput struct {
	Measurements map[string]map[string]float64 `json:"measurements"`
}
