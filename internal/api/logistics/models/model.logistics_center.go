// Package models - các model thuộc domain logistics (trung tâm, kệ hàng, container, AMS).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogisticsCenter định nghĩa trung tâm logistics nhận và phân phối nông sản.
type LogisticsCenter struct {
	_Relationships struct{}           `relationship:"collection:farmer_orders,field:centerId,message:Không thể xóa trung tâm vì có %d đơn nông dân đang tham chiếu.|collection:orders,field:centerId,message:Không thể xóa trung tâm vì có %d đơn hàng khách đang tham chiếu."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Address        string             `json:"address" bson:"address"`
	Active         bool               `json:"active" bson:"active"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
