// Package deliverydto - DTO cho domain delivery.
package deliverydto

// DeliveryShiftCreateInput đầu vào tạo ca giao hàng.
type DeliveryShiftCreateInput struct {
	CenterID string `json:"centerId" validate:"required,object_id" transform:"str_objectid,map=CenterID"`
	Date     string `json:"date" validate:"required,date_yyyymmdd" transform:"map=Date"`
	Shift    string `json:"shift" validate:"required,shift" transform:"map=Shift"`
	Capacity int64  `json:"capacity" validate:"required,gt=0" transform:"map=Capacity"`
}

// DeliveryShiftUpdateInput đầu vào cập nhật ca giao hàng (chỉ capacity).
type DeliveryShiftUpdateInput struct {
	Capacity *int64 `json:"capacity" validate:"omitempty,gt=0"`
}

// ShiftAssignDelivererInput đầu vào phân công người giao vào ca.
type ShiftAssignDelivererInput struct {
	DelivererID string `json:"delivererId" validate:"required,object_id"`
}

// ShiftAssignOrderInput đầu vào gán đơn hàng vào ca.
type ShiftAssignOrderInput struct {
	OrderID string `json:"orderId" validate:"required,object_id"`
}

// ScheduleSetInput đầu vào ghi toàn bộ bitmap lịch khả dụng.
// Bitmap chỉ dùng 28 bit thấp (7 ngày × 4 ca).
type ScheduleSetInput struct {
	Bitmap uint32 `json:"bitmap" validate:"lte=268435455"`
}

// ScheduleSlotInput đầu vào bật/tắt một ô (ngày, ca) trong lịch.
// Day theo tuần lịch: thứ Hai = 0 ... Chủ Nhật = 6.
type ScheduleSlotInput struct {
	Day       int    `json:"day" validate:"gte=0,lte=6"`
	Shift     string `json:"shift" validate:"required,shift"`
	Available bool   `json:"available"`
}
