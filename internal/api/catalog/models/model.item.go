// Package models - các model thuộc domain catalog (mặt hàng, tiêu chuẩn chất lượng).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các chế độ đơn vị của mặt hàng: bán theo cân nặng (kg) hoặc theo cái/bó.
const (
	UnitModeWeight = "weight"
	UnitModePiece  = "piece"
)

// Item định nghĩa mặt hàng nông sản trong danh mục.
// UnitMode quyết định cách nhập số lượng: weight (kg, cho phép số lẻ)
// hoặc piece (số nguyên).
type Item struct {
	_Relationships     struct{}             `relationship:"collection:farmer_orders,field:lines.itemId,message:Không thể xóa mặt hàng vì có %d đơn nông dân đang tham chiếu. Vui lòng xử lý các đơn trước."`
	ID                 primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name               string               `json:"name" bson:"name" index:"unique"`
	Category           string               `json:"category" bson:"category" index:"single:1"`
	UnitMode           string               `json:"unitMode" bson:"unitMode"`
	PricePerUnit       float64              `json:"pricePerUnit" bson:"pricePerUnit"`
	ImageURL           string               `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	QualityStandardIDs []primitive.ObjectID `json:"qualityStandardIds,omitempty" bson:"qualityStandardIds,omitempty"`
	Active             bool                 `json:"active" bson:"active"`
	CreatedAt          int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64                `json:"updatedAt" bson:"updatedAt"`
}

// ItemPaginateResult đại diện cho kết quả phân trang Item
type ItemPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []Item `json:"items" bson:"items"`
}
