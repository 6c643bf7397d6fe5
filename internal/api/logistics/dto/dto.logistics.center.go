// Package logisticsdto - DTO cho domain logistics.
package logisticsdto

// LogisticsCenterCreateInput đầu vào tạo trung tâm logistics.
type LogisticsCenterCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Address string `json:"address" validate:"required"`
	Active  bool   `json:"active"`
}

// LogisticsCenterUpdateInput đầu vào cập nhật trung tâm logistics.
type LogisticsCenterUpdateInput struct {
	Name    string `json:"name" validate:"omitempty,no_xss"`
	Address string `json:"address"`
	Active  *bool  `json:"active"`
}
