// Package models - Payment thuộc domain payment (payments).
// Bản ghi thanh toán là output của collaborator bên ngoài; core chỉ ghi nhận
// và flip trạng thái các waste request liên quan.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatusCompleted là trạng thái duy nhất hệ thống ghi nhận —
// payment chưa hoàn tất không được lưu.
const PaymentStatusCompleted = "completed"

// Payment lưu một lần thanh toán (payments).
type Payment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ResidentId       primitive.ObjectID   `json:"residentId" bson:"residentId"`
	Amount           float64              `json:"amount" bson:"amount"`
	Currency         string               `json:"currency,omitempty" bson:"currency,omitempty"`
	WasteRequests    []primitive.ObjectID `json:"wasteRequests" bson:"wasteRequests"`
	Status           string               `json:"status" bson:"status"`
	GatewaySessionId string               `json:"gatewaySessionId,omitempty" bson:"gatewaySessionId,omitempty"`
	ApproverId       primitive.ObjectID   `json:"approverId,omitempty" bson:"approverId,omitempty"` // Chỉ có ở luồng approve thủ công

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
