package logisticsdto

// ContainerAssignmentCreateInput đầu vào phân bổ container cho đơn nông dân đã tiếp nhận.
type ContainerAssignmentCreateInput struct {
	FarmerOrderID string `json:"farmerOrderId" validate:"required,object_id"`
	ContainerCode string `json:"containerCode" validate:"required,no_xss"`
	ShelfSlot     string `json:"shelfSlot" validate:"required,no_xss"`
}

// ContainerAssignmentUpdateInput đầu vào cập nhật phân bổ container.
type ContainerAssignmentUpdateInput struct {
	ContainerCode string `json:"containerCode" validate:"omitempty,no_xss"`
	ShelfSlot     string `json:"shelfSlot" validate:"omitempty,no_xss"`
}
