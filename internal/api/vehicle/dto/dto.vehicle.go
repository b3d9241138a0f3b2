// Package dto - Input cho domain vehicle.
package dto

// VehicleCreateInput dữ liệu tạo mới một vehicle.
type VehicleCreateInput struct {
	CenterId    string  `json:"centerId" validate:"required"`
	PlateNumber string  `json:"plateNumber" validate:"required,no_xss"`
	VehicleType string  `json:"vehicleType" validate:"omitempty,no_xss"`
	Capacity    float64 `json:"capacity" validate:"omitempty,min=0"`
}

// VehicleUpdateInput dữ liệu cập nhật một phần vehicle.
type VehicleUpdateInput struct {
	CenterId    string  `json:"centerId"`
	PlateNumber string  `json:"plateNumber" validate:"omitempty,no_xss"`
	VehicleType string  `json:"vehicleType" validate:"omitempty,no_xss"`
	Capacity    float64 `json:"capacity" validate:"omitempty,min=0"`
}
