package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContainerAssignment phân bổ một container vật lý và vị trí kệ cho một đơn
// nông dân đã được tiếp nhận.
type ContainerAssignment struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FarmerOrderID primitive.ObjectID `json:"farmerOrderId" bson:"farmerOrderId" index:"single:1"`
	CenterID      primitive.ObjectID `json:"centerId" bson:"centerId" index:"single:1,compound:container_slot_unique"`
	Date          string             `json:"date" bson:"date" index:"compound:container_slot_unique"`
	Shift         string             `json:"shift" bson:"shift" index:"compound:container_slot_unique"`
	ContainerCode string             `json:"containerCode" bson:"containerCode" index:"compound:container_slot_unique"`
	ShelfSlot     string             `json:"shelfSlot" bson:"shelfSlot"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
