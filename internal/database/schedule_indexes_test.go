// Package database - Test index model chống double-booking.
package database

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildScheduleConflictIndex_Shape(t *testing.T) {
	model := BuildScheduleConflictIndex()

	keys, ok := model.Keys.(bson.D)
	if !ok {
		t.Fatalf("Keys phải là bson.D, got %T", model.Keys)
	}
	wantKeys := []string{"collectorId", "date", "time"}
	if len(keys) != len(wantKeys) {
		t.Fatalf("index phải có %d keys, got %d", len(wantKeys), len(keys))
	}
	for i, want := range wantKeys {
		if keys[i].Key != want {
			t.Errorf("key thứ %d phải là %q, got %q", i, want, keys[i].Key)
		}
	}

	if model.Options == nil {
		t.Fatal("index phải có options")
	}
	if model.Options.Unique == nil || !*model.Options.Unique {
		t.Error("index phải là unique để chặn double-booking khi race")
	}
	if model.Options.Name == nil || *model.Options.Name != ScheduleConflictIndexName {
		t.Errorf("index phải tên %q", ScheduleConflictIndexName)
	}

	partial, ok := model.Options.PartialFilterExpression.(bson.D)
	if !ok || len(partial) == 0 {
		t.Fatal("index phải có partial filter để schedule canceled giải phóng slot")
	}
	if partial[0].Key != "status" {
		t.Errorf("partial filter phải theo status, got %q", partial[0].Key)
	}
}
