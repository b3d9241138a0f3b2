package utility

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi thành ObjectID (NilObjectID nếu không hợp lệ)
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// StringArray2ObjectIDArray chuyển đổi mảng chuỗi thành mảng ObjectID.
// Trả về lỗi phần tử đầu tiên không hợp lệ qua ok=false để caller từ chối input.
func StringArray2ObjectIDArray(ids []string) ([]primitive.ObjectID, bool) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, false
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs, true
}

// NormalizeSlotDate đưa một giá trị ngày về dạng ISO "YYYY-MM-DD".
// Chấp nhận time.Time, primitive.DateTime hoặc chuỗi có prefix ISO;
// không nhận diện được → dùng ngày hiện tại (hành vi của hệ thống cũ).
func NormalizeSlotDate(v interface{}) string {
	switch d := v.(type) {
	case time.Time:
		return d.UTC().Format("2006-01-02")
	case primitive.DateTime:
		return d.Time().UTC().Format("2006-01-02")
	case string:
		s := strings.TrimSpace(d)
		if len(s) >= 10 {
			if _, err := time.Parse("2006-01-02", s[:10]); err == nil {
				return s[:10]
			}
		}
	}
	return time.Now().UTC().Format("2006-01-02")
}

// NormalizeSlotTime trim time slot, rỗng → "00:00"
func NormalizeSlotTime(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return "00:00"
	}
	return t
}
