// Package models - CollectionCenter thuộc domain center (collection_centers).
// Lưu điểm tập kết cùng trần tài nguyên cấu hình và allocation hiện hành
// do Capacity Planner ghi.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceCaps là trần tài nguyên do admin cấu hình cho một center.
// Field nil nghĩa là không đặt trần — planner coi như "không giới hạn quá nhu cầu".
type ResourceCaps struct {
	Trucks *int `json:"trucks,omitempty" bson:"trucks,omitempty"`
	Staff  *int `json:"staff,omitempty" bson:"staff,omitempty"`
}

// AllocatedResources là allocation hiện hành của một center, chỉ Capacity Planner
// được ghi. Trucks/Staff không bao giờ giảm giữa các lần chạy planner (ratchet).
type AllocatedResources struct {
	Trucks        int     `json:"trucks" bson:"trucks"`
	Staff         int     `json:"staff" bson:"staff"`
	TotalQuantity float64 `json:"totalQuantity" bson:"totalQuantity"`
}

// CollectionCenter lưu điểm tập kết (collection_centers).
type CollectionCenter struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name               string              `json:"name" bson:"name"`
	Location           string              `json:"location,omitempty" bson:"location,omitempty"`
	Resources          *ResourceCaps       `json:"resources,omitempty" bson:"resources,omitempty"`
	AllocatedResources *AllocatedResources `json:"allocatedResources,omitempty" bson:"allocatedResources,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
