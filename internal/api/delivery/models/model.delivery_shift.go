package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryShift là một ca giao hàng của trung tâm theo ngày + ca, gồm danh
// sách người giao được phân công và các đơn hàng gán vào ca. Capacity giới
// hạn số đơn một ca nhận được.
type DeliveryShift struct {
	ID           primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	CenterID     primitive.ObjectID   `json:"centerId" bson:"centerId" index:"single:1,compound:delivery_context_unique"`
	Date         string               `json:"date" bson:"date" index:"compound:delivery_context_unique"`
	Shift        string               `json:"shift" bson:"shift" index:"compound:delivery_context_unique"`
	Capacity     int64                `json:"capacity" bson:"capacity"`
	DelivererIDs []primitive.ObjectID `json:"delivererIds" bson:"delivererIds"`
	OrderIDs     []primitive.ObjectID `json:"orderIds" bson:"orderIds"`
	CreatedAt    int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                `json:"updatedAt" bson:"updatedAt"`
}

// HasDeliverer kiểm tra người giao đã được phân công vào ca chưa.
func (s DeliveryShift) HasDeliverer(delivererID primitive.ObjectID) bool {
	for _, id := range s.DelivererIDs {
		if id == delivererID {
			return true
		}
	}
	return false
}

// HasOrder kiểm tra đơn hàng đã được gán vào ca chưa.
func (s DeliveryShift) HasOrder(orderID primitive.ObjectID) bool {
	for _, id := range s.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}
