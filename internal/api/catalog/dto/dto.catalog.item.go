// Package catalogdto - DTO cho domain catalog.
package catalogdto

// ItemCreateInput đầu vào tạo mặt hàng.
type ItemCreateInput struct {
	Name               string   `json:"name" validate:"required,no_xss"`
	Category           string   `json:"category" validate:"required"`
	UnitMode           string   `json:"unitMode" validate:"required,unit_mode"`
	PricePerUnit       float64  `json:"pricePerUnit" validate:"required,gt=0"`
	ImageURL           string   `json:"imageUrl" validate:"omitempty,url"`
	QualityStandardIDs []string `json:"qualityStandardIds" validate:"omitempty,dive,object_id" transform:"str_objectid_slice,map=QualityStandardIDs,optional"`
	Active             bool     `json:"active"`
}

// ItemUpdateInput đầu vào cập nhật mặt hàng.
type ItemUpdateInput struct {
	Name               string   `json:"name" validate:"omitempty,no_xss"`
	Category           string   `json:"category"`
	UnitMode           string   `json:"unitMode" validate:"omitempty,unit_mode"`
	PricePerUnit       float64  `json:"pricePerUnit" validate:"omitempty,gt=0"`
	ImageURL           string   `json:"imageUrl" validate:"omitempty,url"`
	QualityStandardIDs []string `json:"qualityStandardIds" validate:"omitempty,dive,object_id" transform:"str_objectid_slice,map=QualityStandardIDs,optional"`
	Active             *bool    `json:"active"`
}
