// Package models - model giỏ hàng (Cart) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine là một dòng trong giỏ, khóa bởi cặp (itemId, farmerOrderId) trỏ tới
// một dòng tồn kho AMS cụ thể.
type CartLine struct {
	ItemID        primitive.ObjectID `json:"itemId" bson:"itemId"`
	FarmerOrderID primitive.ObjectID `json:"farmerOrderId" bson:"farmerOrderId"`
	ItemName      string             `json:"itemName" bson:"itemName"`
	Quantity      float64            `json:"quantity" bson:"quantity"`
	UnitMode      string             `json:"unitMode" bson:"unitMode"`
	UnitPrice     float64            `json:"unitPrice" bson:"unitPrice"`
}

// Cart định nghĩa giỏ hàng của khách, gắn với một bối cảnh giao nhận
// (center, date, shift). Đổi bối cảnh làm giỏ bị xóa và bắt đầu lại —
// tương đương cơ chế invalidate phía client.
type Cart struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"unique"`
	CenterID   primitive.ObjectID `json:"centerId" bson:"centerId"`
	Date       string             `json:"date" bson:"date"`
	Shift      string             `json:"shift" bson:"shift"`
	Lines      []CartLine         `json:"lines" bson:"lines"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// SameContext kiểm tra giỏ có đang ở bối cảnh giao nhận này không.
func (c Cart) SameContext(centerID primitive.ObjectID, date, shift string) bool {
	return c.CenterID == centerID && c.Date == date && c.Shift == shift
}
