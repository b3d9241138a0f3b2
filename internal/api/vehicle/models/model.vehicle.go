// Package models - Vehicle thuộc domain vehicle (vehicles).
// Mỗi xe thuộc đúng một center; schedule chỉ kiểm tra tồn tại, không có
// logic chuyển quyền sở hữu.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle lưu xe thu gom (vehicles).
type Vehicle struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CenterId    primitive.ObjectID `json:"centerId" bson:"centerId"`
	PlateNumber string             `json:"plateNumber" bson:"plateNumber"`
	VehicleType string             `json:"vehicleType,omitempty" bson:"vehicleType,omitempty"` // truck, compactor, ...
	Capacity    float64            `json:"capacity,omitempty" bson:"capacity,omitempty"`       // Cùng đơn vị với quantity

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
