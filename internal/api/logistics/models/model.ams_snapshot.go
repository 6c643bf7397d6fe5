package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AmsLine là một dòng tồn kho bán trong snapshot AMS, gắn với nguồn gốc
// là một dòng hàng của một đơn nông dân cụ thể.
type AmsLine struct {
	ItemID            primitive.ObjectID `json:"itemId" bson:"itemId"`
	FarmerOrderID     primitive.ObjectID `json:"farmerOrderId" bson:"farmerOrderId"`
	ItemName          string             `json:"itemName" bson:"itemName"`
	UnitMode          string             `json:"unitMode" bson:"unitMode"`
	PricePerUnit      float64            `json:"pricePerUnit" bson:"pricePerUnit"`
	TotalQuantity     float64            `json:"totalQuantity" bson:"totalQuantity"`
	RemainingQuantity float64            `json:"remainingQuantity" bson:"remainingQuantity"`
}

// AmsSnapshot (Available Market Stock) là snapshot tồn kho bán của một trung tâm
// theo ngày + ca, tổng hợp từ các đơn nông dân đã tiếp nhận. Mỗi bối cảnh có
// đúng một document, làm mới qua upsert.
type AmsSnapshot struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CenterID  primitive.ObjectID `json:"centerId" bson:"centerId" index:"single:1,compound:ams_context_unique"`
	Date      string             `json:"date" bson:"date" index:"compound:ams_context_unique"`
	Shift     string             `json:"shift" bson:"shift" index:"compound:ams_context_unique"`
	Lines     []AmsLine          `json:"lines" bson:"lines"`
	BuiltAt   int64              `json:"builtAt" bson:"builtAt"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
