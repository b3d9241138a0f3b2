// Package basesvc - Test ToUpdateData: giữ nguyên UpdateData có sẵn, nhận map
// operator và wrap map thường trong $set.
package basesvc

import "testing"

func TestToUpdateData_PassThroughPointer(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"status": "accepted"}}
	got, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("không được lỗi: %v", err)
	}
	if got != in {
		t.Error("*UpdateData phải được trả nguyên con trỏ")
	}
}

func TestToUpdateData_OperatorMap(t *testing.T) {
	in := map[string]interface{}{
		"$set":   map[string]interface{}{"status": "canceled"},
		"$unset": map[string]interface{}{"approverId": ""},
	}
	got, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("không được lỗi: %v", err)
	}
	if got.Set["status"] != "canceled" {
		t.Errorf("$set phải được map vào Set, got %v", got.Set)
	}
	if _, ok := got.Unset["approverId"]; !ok {
		t.Errorf("$unset phải được map vào Unset, got %v", got.Unset)
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	in := map[string]interface{}{"name": "Trạm Quận 1"}
	got, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("không được lỗi: %v", err)
	}
	if got.Set["name"] != "Trạm Quận 1" {
		t.Errorf("map thường phải được wrap trong $set, got %v", got.Set)
	}
	if got.Unset != nil || got.Push != nil {
		t.Error("map thường không được sinh ra operator khác ngoài $set")
	}
}
