// Package models - Schedule thuộc domain schedule (schedules).
// Một schedule gán collector vào một center/vehicle/slot cùng tập request
// đã claim; không có hai schedule chưa canceled nào trùng (collectorId, date, time).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái vòng đời của một schedule.
const (
	ScheduleStatusPendingAcceptance = "pending-acceptance"
	ScheduleStatusAccepted          = "accepted"
	ScheduleStatusCanceled          = "canceled"
)

// Schedule lưu lịch thu gom (schedules).
// Requests là weak reference theo id — schedule không sở hữu bản thân
// các WasteRequest.
type Schedule struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CollectorId primitive.ObjectID   `json:"collectorId" bson:"collectorId"`
	CenterId    primitive.ObjectID   `json:"centerId" bson:"centerId"`
	VehicleId   primitive.ObjectID   `json:"vehicleId" bson:"vehicleId"`
	Date        string               `json:"date" bson:"date"` // ISO date (YYYY-MM-DD)
	Time        string               `json:"time" bson:"time"` // Slot free-text, so khớp exact-match
	Status      string               `json:"status" bson:"status"`
	Requests    []primitive.ObjectID `json:"requests" bson:"requests"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
