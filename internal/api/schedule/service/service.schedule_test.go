// Package schedsvc - Test filter chống double-booking: exact match theo slot,
// schedule canceled không giữ chỗ.
package schedsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	schedmodels "metro_waste/internal/api/schedule/models"
)

func TestBuildConflictFilter_MatchesSlotExactly(t *testing.T) {
	collectorID := primitive.NewObjectID()
	filter := BuildConflictFilter(collectorID, "2026-08-15", "08:00")

	if filter["collectorId"] != collectorID {
		t.Errorf("filter phải match đúng collectorId, got %v", filter["collectorId"])
	}
	if filter["date"] != "2026-08-15" {
		t.Errorf("date phải là exact match, got %v", filter["date"])
	}
	if filter["time"] != "08:00" {
		t.Errorf("time phải là exact match chuỗi, got %v", filter["time"])
	}
}

func TestBuildConflictFilter_ExcludesCanceled(t *testing.T) {
	filter := BuildConflictFilter(primitive.NewObjectID(), "2026-08-15", "08:00")

	status, ok := filter["status"].(bson.M)
	if !ok {
		t.Fatalf("status phải là điều kiện $ne, got %T", filter["status"])
	}
	if status["$ne"] != schedmodels.ScheduleStatusCanceled {
		t.Errorf("schedule canceled phải được loại khỏi conflict check, got %v", status["$ne"])
	}
}
