// Package wastesvc - Test AggregateDemand và BuildPeakPeriods trên dữ liệu
// request hỗn tạp (quantity kiểu lẫn lộn, center thiếu).
package wastesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	wastemodels "metro_waste/internal/api/waste/models"
)

func TestAggregateDemand_SumsByCenter(t *testing.T) {
	centerA := primitive.NewObjectID()
	centerB := primitive.NewObjectID()

	requests := []wastemodels.WasteRequest{
		{CollectionCenterId: centerA, Quantity: float64(100)},
		{CollectionCenterId: centerA, Quantity: "50"}, // document cũ lưu string
		{CollectionCenterId: centerB, Quantity: float64(30)},
	}

	totals := AggregateDemand(requests)
	if totals[centerA.Hex()] != 150 {
		t.Errorf("center A phải gom 150, got %v", totals[centerA.Hex()])
	}
	if totals[centerB.Hex()] != 30 {
		t.Errorf("center B phải gom 30, got %v", totals[centerB.Hex()])
	}
}

func TestAggregateDemand_SkipsMissingCenter(t *testing.T) {
	requests := []wastemodels.WasteRequest{
		{Quantity: float64(100)}, // không có center
	}
	totals := AggregateDemand(requests)
	if len(totals) != 0 {
		t.Errorf("request không có center phải bị bỏ qua, got %v", totals)
	}
}

func TestAggregateDemand_BadQuantityContributesZero(t *testing.T) {
	center := primitive.NewObjectID()
	requests := []wastemodels.WasteRequest{
		{CollectionCenterId: center, Quantity: "abc"},
		{CollectionCenterId: center, Quantity: float64(40)},
	}
	totals := AggregateDemand(requests)
	if totals[center.Hex()] != 40 {
		t.Errorf("record hỏng đóng góp 0, tổng phải là 40, got %v", totals[center.Hex()])
	}
}

func TestBuildPeakPeriods_GroupsAndSortsDescending(t *testing.T) {
	center := primitive.NewObjectID()
	names := map[string]string{center.Hex(): "Trạm Quận 1"}

	requests := []wastemodels.WasteRequest{
		{CollectionCenterId: center, CollectionDate: "2026-08-01", CollectionTime: "08:00", Quantity: float64(100)},
		{CollectionCenterId: center, CollectionDate: "2026-08-01", CollectionTime: "08:00", Quantity: float64(50)},
		{CollectionCenterId: center, CollectionDate: "2026-08-02", CollectionTime: "14:00", Quantity: float64(500)},
	}

	periods := BuildPeakPeriods(requests, names)
	if len(periods) != 2 {
		t.Fatalf("phải gom thành 2 slot, got %d", len(periods))
	}
	if periods[0].TotalQuantity != 500 {
		t.Errorf("slot đầu phải là cao điểm 500, got %v", periods[0].TotalQuantity)
	}
	if periods[1].TotalQuantity != 150 {
		t.Errorf("slot sau phải gom 150, got %v", periods[1].TotalQuantity)
	}
	if periods[0].Center != "Trạm Quận 1" {
		t.Errorf("center phải resolve ra tên, got %q", periods[0].Center)
	}
	if periods[0].Date != "2026-08-02" || periods[0].Time != "14:00" {
		t.Errorf("slot cao điểm sai: %q %q", periods[0].Date, periods[0].Time)
	}
}

func TestBuildPeakPeriods_DefaultsForMissingFields(t *testing.T) {
	requests := []wastemodels.WasteRequest{
		{Quantity: float64(10)}, // không center, không time
	}
	periods := BuildPeakPeriods(requests, nil)
	if len(periods) != 1 {
		t.Fatalf("phải có 1 slot, got %d", len(periods))
	}
	if periods[0].Center != UnknownCenterName {
		t.Errorf("center thiếu phải là %q, got %q", UnknownCenterName, periods[0].Center)
	}
	if periods[0].Time != "00:00" {
		t.Errorf("time thiếu phải mặc định 00:00, got %q", periods[0].Time)
	}
}

func TestBuildPeakPeriods_EmptyInput(t *testing.T) {
	periods := BuildPeakPeriods(nil, nil)
	if periods == nil {
		t.Fatal("input rỗng phải trả slice rỗng, không phải nil")
	}
	if len(periods) != 0 {
		t.Errorf("input rỗng phải cho 0 slot, got %d", len(periods))
	}
}
