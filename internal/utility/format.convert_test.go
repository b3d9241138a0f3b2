// Package utility - Test chuẩn hóa slot và convert ObjectID.
package utility

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeSlotDate_ISOPrefix(t *testing.T) {
	if got := NormalizeSlotDate("2026-08-15"); got != "2026-08-15" {
		t.Errorf("chuỗi ISO phải giữ nguyên, got %q", got)
	}
	if got := NormalizeSlotDate("2026-08-15T08:00:00Z"); got != "2026-08-15" {
		t.Errorf("chuỗi ISO kèm giờ phải cắt về ngày, got %q", got)
	}
}

func TestNormalizeSlotDate_TimeValue(t *testing.T) {
	d := time.Date(2026, 8, 15, 23, 0, 0, 0, time.UTC)
	if got := NormalizeSlotDate(d); got != "2026-08-15" {
		t.Errorf("time.Time phải format ISO date, got %q", got)
	}
}

func TestNormalizeSlotDate_UnparsableFallsBackToToday(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	if got := NormalizeSlotDate("hôm qua"); got != today {
		t.Errorf("chuỗi không nhận diện được phải fallback về hôm nay %q, got %q", today, got)
	}
}

func TestNormalizeSlotTime(t *testing.T) {
	if got := NormalizeSlotTime(" 08:00 "); got != "08:00" {
		t.Errorf("time slot phải được trim, got %q", got)
	}
	if got := NormalizeSlotTime(""); got != "00:00" {
		t.Errorf("time slot rỗng phải mặc định 00:00, got %q", got)
	}
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ids, ok := StringArray2ObjectIDArray([]string{a.Hex(), b.Hex()})
	if !ok {
		t.Fatal("danh sách hex hợp lệ phải convert được")
	}
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Errorf("thứ tự và giá trị phải được giữ, got %v", ids)
	}

	if _, ok := StringArray2ObjectIDArray([]string{a.Hex(), "not-an-id"}); ok {
		t.Error("một phần tử hỏng phải làm fail cả danh sách")
	}
}
