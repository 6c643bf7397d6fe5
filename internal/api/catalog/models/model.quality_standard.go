package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QualityRule là một quy tắc số trong bộ tiêu chuẩn: giá trị đo của Field
// phải nằm trong [Min, Max].
type QualityRule struct {
	Field string  `json:"field" bson:"field"`
	Min   float64 `json:"min" bson:"min"`
	Max   float64 `json:"max" bson:"max"`
	Unit  string  `json:"unit,omitempty" bson:"unit,omitempty"`
}

// QualityStandard định nghĩa bộ tiêu chuẩn chất lượng theo category.
// Dòng hàng trong đơn nông dân được đối chiếu với các rule này khi kiểm định.
type QualityStandard struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Category  string             `json:"category" bson:"category" index:"single:1"`
	Rules     []QualityRule      `json:"rules" bson:"rules"`
	Describe  string             `json:"describe,omitempty" bson:"describe,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
