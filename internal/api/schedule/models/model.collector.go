// Package models - Collector (collectors): nhân viên thu gom được gán lịch.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collector lưu nhân viên thu gom (collectors).
type Collector struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
