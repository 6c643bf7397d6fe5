// Package models - model đơn hàng khách (Order) thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của đơn hàng khách.
// Chuyển trạng thái hợp lệ: pending→confirmed|cancelled, confirmed→picked|cancelled,
// picked→delivering, delivering→delivered.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusPicked     = "picked"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderLine là một dòng hàng trong đơn khách, gắn với nguồn gốc là một dòng
// tồn kho AMS (itemId + farmerOrderId).
type OrderLine struct {
	ItemID        primitive.ObjectID `json:"itemId" bson:"itemId"`
	FarmerOrderID primitive.ObjectID `json:"farmerOrderId" bson:"farmerOrderId"`
	ItemName      string             `json:"itemName" bson:"itemName"`
	Quantity      float64            `json:"quantity" bson:"quantity"`
	UnitMode      string             `json:"unitMode" bson:"unitMode"`
	UnitPrice     float64            `json:"unitPrice" bson:"unitPrice"`
}

// Order định nghĩa đơn hàng của khách theo bối cảnh giao nhận (center, date, shift).
// PickupCode là mã nhận hàng duy nhất để khách xuất trình khi lấy hàng.
type Order struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID  primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"`
	CenterID    primitive.ObjectID `json:"centerId" bson:"centerId" index:"single:1,compound:order_context"`
	Date        string             `json:"date" bson:"date" index:"compound:order_context"`
	Shift       string             `json:"shift" bson:"shift" index:"compound:order_context"`
	Lines       []OrderLine        `json:"lines" bson:"lines"`
	Total       float64            `json:"total" bson:"total"`
	Status      string             `json:"status" bson:"status" index:"single:1"`
	PickupCode  string             `json:"pickupCode" bson:"pickupCode" index:"unique"`
	CancelNote  string             `json:"cancelNote,omitempty" bson:"cancelNote,omitempty"`
	ConfirmedAt int64              `json:"confirmedAt,omitempty" bson:"confirmedAt,omitempty"`
	DeliveredAt int64              `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// OrderPaginateResult đại diện cho kết quả phân trang Order
type OrderPaginateResult struct {
	Page      int64   `json:"page" bson:"page"`
	Limit     int64   `json:"limit" bson:"limit"`
	ItemCount int64   `json:"itemCount" bson:"itemCount"`
	Items     []Order `json:"items" bson:"items"`
}

// CanTransition kiểm tra chuyển trạng thái đơn hàng có hợp lệ không.
func CanTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusConfirmed || to == OrderStatusCancelled
	case OrderStatusConfirmed:
		return to == OrderStatusPicked || to == OrderStatusCancelled
	case OrderStatusPicked:
		return to == OrderStatusDelivering
	case OrderStatusDelivering:
		return to == OrderStatusDelivered
	default:
		return false
	}
}
