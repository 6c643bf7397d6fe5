package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShelfCrowd là snapshot độ đầy kệ hàng của một trung tâm theo ngày + ca.
// Mỗi bối cảnh (center, date, shift) có đúng một document, ghi qua upsert.
type ShelfCrowd struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CenterID         primitive.ObjectID `json:"centerId" bson:"centerId" index:"single:1,compound:shelf_context_unique"`
	Date             string             `json:"date" bson:"date" index:"compound:shelf_context_unique"`
	Shift            string             `json:"shift" bson:"shift" index:"compound:shelf_context_unique"`
	Capacity         int64              `json:"capacity" bson:"capacity"`
	ContainersPlaced int64              `json:"containersPlaced" bson:"containersPlaced"`
	FillRatio        float64            `json:"fillRatio" bson:"fillRatio"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
