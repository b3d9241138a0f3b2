// Package dto - Input/Output cho domain waste.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WasteRequestCreateInput dữ liệu tạo mới một waste request.
type WasteRequestCreateInput struct {
	ResidentId         string      `json:"residentId" validate:"required"`
	WasteType          string      `json:"wasteType" validate:"required,no_xss"`
	Quantity           interface{} `json:"quantity" validate:"required"`
	CollectionCenterId string      `json:"collectionCenterId" validate:"required"`
	CollectionDate     string      `json:"collectionDate" validate:"required"`
	CollectionTime     string      `json:"collectionTime" validate:"omitempty,time_slot"`
	Address            string      `json:"address" validate:"omitempty,no_xss"`
}

// WasteRequestUpdateInput dữ liệu cập nhật một phần waste request.
// Chỉ các field khác nil/rỗng mới được ghi xuống.
type WasteRequestUpdateInput struct {
	WasteType          string      `json:"wasteType" validate:"omitempty,no_xss"`
	Quantity           interface{} `json:"quantity"`
	CollectionCenterId string      `json:"collectionCenterId"`
	CollectionDate     string      `json:"collectionDate"`
	CollectionTime     string      `json:"collectionTime" validate:"omitempty,time_slot"`
	Address            string      `json:"address" validate:"omitempty,no_xss"`
}

// PeakPeriod một dòng của báo cáo cao điểm: slot (date, time) của một center
// cùng tổng khối lượng yêu cầu.
type PeakPeriod struct {
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Center        string  `json:"center"`
	TotalQuantity float64 `json:"totalQuantity"`
}

// RequestProgress view tiến độ các yêu cầu của một resident.
type RequestProgress struct {
	RequestId primitive.ObjectID `json:"requestId"`
	WasteType string             `json:"wasteType"`
	Status    string             `json:"status"`
	UpdatedAt int64              `json:"updatedAt"`
}
