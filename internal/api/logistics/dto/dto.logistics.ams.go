package logisticsdto

// AmsContextInput xác định bối cảnh snapshot AMS cần đọc hoặc làm mới.
type AmsContextInput struct {
	CenterID string `json:"centerId" validate:"required,object_id"`
	Date     string `json:"date" validate:"required,date_yyyymmdd"`
	Shift    string `json:"shift" validate:"required,shift"`
}
