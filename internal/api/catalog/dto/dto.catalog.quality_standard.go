package catalogdto

// QualityRuleInput một quy tắc trong bộ tiêu chuẩn.
type QualityRuleInput struct {
	Field string  `json:"field" validate:"required"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max" validate:"gtefield=Min"`
	Unit  string  `json:"unit"`
}

// QualityStandardCreateInput đầu vào tạo bộ tiêu chuẩn chất lượng.
type QualityStandardCreateInput struct {
	Name     string             `json:"name" validate:"required,no_xss"`
	Category string             `json:"category" validate:"required"`
	Rules    []QualityRuleInput `json:"rules" validate:"required,min=1,dive"`
	Describe string             `json:"describe"`
}

// QualityStandardUpdateInput đầu vào cập nhật bộ tiêu chuẩn chất lượng.
type QualityStandardUpdateInput struct {
	Name     string             `json:"name" validate:"omitempty,no_xss"`
	Category string             `json:"category"`
	Rules    []QualityRuleInput `json:"rules" validate:"omitempty,min=1,dive"`
	Describe string             `json:"describe"`
}
