// Package models - model đơn giao nông sản (FarmerOrder) thuộc domain farmer.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của đơn giao nông sản.
// Chuyển trạng thái hợp lệ: draft→submitted, submitted→accepted|rejected, accepted→fulfilled.
const (
	FarmerOrderStatusDraft     = "draft"
	FarmerOrderStatusSubmitted = "submitted"
	FarmerOrderStatusAccepted  = "accepted"
	FarmerOrderStatusRejected  = "rejected"
	FarmerOrderStatusFulfilled = "fulfilled"
)

// FarmerOrderLine là một dòng hàng trong đơn giao của nông dân.
// Measurements chứa số liệu kiểm định thực tế (điền khi trung tâm tiếp nhận).
type FarmerOrderLine struct {
	ItemID       primitive.ObjectID `json:"itemId" bson:"itemId"`
	Quantity     float64            `json:"quantity" bson:"quantity"`
	UnitMode     string             `json:"unitMode" bson:"unitMode"`
	PricePerUnit float64            `json:"pricePerUnit" bson:"pricePerUnit"`
	Measurements map[string]float64 `json:"measurements,omitempty" bson:"measurements,omitempty"`
}

// QualityCheckResult là kết quả đối chiếu một rule chất lượng trên một dòng hàng.
type QualityCheckResult struct {
	ItemID       primitive.ObjectID `json:"itemId" bson:"itemId"`
	StandardName string             `json:"standardName" bson:"standardName"`
	Field        string             `json:"field" bson:"field"`
	Measured     float64            `json:"measured" bson:"measured"`
	Min          float64            `json:"min" bson:"min"`
	Max          float64            `json:"max" bson:"max"`
	Passed       bool               `json:"passed" bson:"passed"`
}

// FarmerOrder định nghĩa đơn giao nông sản của nông dân tới một trung tâm logistics
// theo ngày và ca nhận hàng cố định.
type FarmerOrder struct {
	_Relationships struct{}             `relationship:"collection:container_assignments,field:farmerOrderId,message:Không thể xóa đơn nông dân vì có %d phân bổ container đang tham chiếu. Vui lòng gỡ phân bổ trước."`
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	FarmerID       primitive.ObjectID   `json:"farmerId" bson:"farmerId" index:"single:1"`
	CenterID       primitive.ObjectID   `json:"centerId" bson:"centerId" index:"single:1,compound:center_date_shift"`
	PickupDate     string               `json:"pickupDate" bson:"pickupDate" index:"compound:center_date_shift"`
	Shift          string               `json:"shift" bson:"shift" index:"compound:center_date_shift"`
	Lines          []FarmerOrderLine    `json:"lines" bson:"lines"`
	Status         string               `json:"status" bson:"status" index:"single:1"`
	QualityChecks  []QualityCheckResult `json:"qualityChecks,omitempty" bson:"qualityChecks,omitempty"`
	RejectNote     string               `json:"rejectNote,omitempty" bson:"rejectNote,omitempty"`
	SubmittedAt    int64                `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
	DecidedAt      int64                `json:"decidedAt,omitempty" bson:"decidedAt,omitempty"`
	FulfilledAt    int64                `json:"fulfilledAt,omitempty" bson:"fulfilledAt,omitempty"`
	CreatedAt      int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                `json:"updatedAt" bson:"updatedAt"`
}

// FarmerOrderPaginateResult đại diện cho kết quả phân trang FarmerOrder
type FarmerOrderPaginateResult struct {
	Page      int64         `json:"page" bson:"page"`
	Limit     int64         `json:"limit" bson:"limit"`
	ItemCount int64         `json:"itemCount" bson:"itemCount"`
	Items     []FarmerOrder `json:"items" bson:"items"`
}

// CanDelete kiểm tra đơn còn xóa được không: chỉ khi còn là bản nháp.
// Đơn đã nộp trở đi giữ lại làm dữ liệu đối soát với trung tâm.
func CanDelete(status string) bool {
	return status == FarmerOrderStatusDraft
}

// CanTransition kiểm tra chuyển trạng thái có hợp lệ không.
func CanTransition(from, to string) bool {
	switch from {
	case FarmerOrderStatusDraft:
		return to == FarmerOrderStatusSubmitted
	case FarmerOrderStatusSubmitted:
		return to == FarmerOrderStatusAccepted || to == FarmerOrderStatusRejected
	case FarmerOrderStatusAccepted:
		return to == FarmerOrderStatusFulfilled
	default:
		return false
	}
}
