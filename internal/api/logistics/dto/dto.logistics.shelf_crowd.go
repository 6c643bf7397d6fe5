package logisticsdto

// ShelfCrowdUpsertInput đầu vào ghi snapshot độ đầy kệ theo bối cảnh (center, date, shift).
type ShelfCrowdUpsertInput struct {
	CenterID         string `json:"centerId" validate:"required,object_id"`
	Date             string `json:"date" validate:"required,date_yyyymmdd"`
	Shift            string `json:"shift" validate:"required,shift"`
	Capacity         int64  `json:"capacity" validate:"required,gt=0"`
	ContainersPlaced int64  `json:"containersPlaced" validate:"gte=0"`
}

// ShelfCrowdUpdateInput đầu vào cập nhật snapshot độ đầy kệ (CRUD).
type ShelfCrowdUpdateInput struct {
	Capacity         int64 `json:"capacity" validate:"omitempty,gt=0"`
	ContainersPlaced int64 `json:"containersPlaced" validate:"omitempty,gte=0"`
}
