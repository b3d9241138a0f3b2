// Package models - WasteRequest thuộc domain waste (waste_requests).
// Lưu yêu cầu thu gom rác của resident, là nguồn dữ liệu cho demand aggregation
// và scheduling lifecycle.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái vòng đời của một waste request.
const (
	RequestStatusPending         = "pending"
	RequestStatusScheduled       = "scheduled"
	RequestStatusCollected       = "collected"
	RequestStatusCanceled        = "canceled"
	RequestStatusPaymentComplete = "payment complete"
)

// WasteRequest lưu yêu cầu thu gom (waste_requests).
// Quantity khai báo interface{} vì dữ liệu legacy có thể lưu dạng string;
// mọi phép đọc phải đi qua utility.SafeParseQuantity.
type WasteRequest struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ResidentId         primitive.ObjectID `json:"residentId" bson:"residentId"`
	WasteType          string             `json:"wasteType" bson:"wasteType"` // Plastic, Organic, Glass, ...
	Quantity           interface{}        `json:"quantity" bson:"quantity"`
	CollectionCenterId primitive.ObjectID `json:"collectionCenterId,omitempty" bson:"collectionCenterId,omitempty"` // Bản ghi cũ có thể thiếu
	CollectionDate     string             `json:"collectionDate,omitempty" bson:"collectionDate,omitempty"`         // ISO date (YYYY-MM-DD)
	CollectionTime     string             `json:"collectionTime,omitempty" bson:"collectionTime,omitempty"`         // Slot dạng free-text, rỗng → "00:00"
	Status             string             `json:"status" bson:"status"`
	Address            string             `json:"address,omitempty" bson:"address,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
