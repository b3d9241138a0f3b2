// Package dto - Input/Output cho domain center.
package dto

// CenterCreateInput dữ liệu tạo mới một collection center.
type CenterCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Location string `json:"location" validate:"omitempty,no_xss"`
	Trucks   *int   `json:"trucks" validate:"omitempty,min=0"`
	Staff    *int   `json:"staff" validate:"omitempty,min=0"`
}

// AllocationResult kết quả allocation của một center trong một lần chạy batch.
// Error khác rỗng nghĩa là center đó thất bại nhưng không chặn các center khác.
type AllocationResult struct {
	CenterId        string  `json:"centerId"`
	CenterName      string  `json:"centerName"`
	TrucksAllocated int     `json:"trucksAllocated"`
	StaffAllocated  int     `json:"staffAllocated"`
	TotalQuantity   float64 `json:"totalQuantity"`
	Error           string  `json:"error,omitempty"`
}
