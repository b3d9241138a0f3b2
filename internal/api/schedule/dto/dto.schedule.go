// Package dto - Input/Output cho domain schedule.
package dto

// ScheduleCreateInput dữ liệu tạo mới một schedule.
// SelectedRequests là danh sách id của các waste request đang pending.
// Time là slot dạng tự do ("08:00" hoặc "morning") — conflict check so sánh
// chuỗi nguyên văn, không ép định dạng HH:MM.
type ScheduleCreateInput struct {
	CollectorId      string   `json:"collectorId" validate:"required"`
	CenterId         string   `json:"centerId" validate:"required"`
	VehicleId        string   `json:"vehicleId" validate:"required"`
	Date             string   `json:"date" validate:"required"`
	Time             string   `json:"time" validate:"required"`
	SelectedRequests []string `json:"selectedRequests" validate:"required,min=1"`
}

// EntityValidation kết quả kiểm tra tồn tại collector/center/vehicle.
type EntityValidation struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}
