// Package centersvc - Test PlanAllocation: ceil theo truckCapacity, trần cấu
// hình và sàn ratchet.
package centersvc

import (
	"testing"

	centermodels "metro_waste/internal/api/center/models"
)

func intPtr(v int) *int { return &v }

func TestPlanAllocation_CeilDemand(t *testing.T) {
	center := &centermodels.CollectionCenter{}
	got := PlanAllocation(center, 2500, 1000, 2)
	if got.Trucks != 3 {
		t.Errorf("2500kg / 1000kg-xe phải cần 3 xe, got %d", got.Trucks)
	}
	if got.Staff != 6 {
		t.Errorf("3 xe * 2 nhân viên phải là 6, got %d", got.Staff)
	}
	if got.TotalQuantity != 2500 {
		t.Errorf("TotalQuantity phải giữ nguyên demand 2500, got %v", got.TotalQuantity)
	}
}

func TestPlanAllocation_ZeroDemand(t *testing.T) {
	center := &centermodels.CollectionCenter{}
	got := PlanAllocation(center, 0, 1000, 2)
	if got.Trucks != 0 || got.Staff != 0 {
		t.Errorf("demand 0 phải cho allocation 0/0, got trucks=%d staff=%d", got.Trucks, got.Staff)
	}
}

func TestPlanAllocation_CapLimitsAllocation(t *testing.T) {
	center := &centermodels.CollectionCenter{
		Resources: &centermodels.ResourceCaps{
			Trucks: intPtr(2),
			Staff:  intPtr(4),
		},
	}
	got := PlanAllocation(center, 5000, 1000, 2)
	if got.Trucks != 2 {
		t.Errorf("trần 2 xe phải chặn nhu cầu 5 xe, got %d", got.Trucks)
	}
	if got.Staff != 4 {
		t.Errorf("trần 4 nhân viên phải chặn nhu cầu 10, got %d", got.Staff)
	}
}

func TestPlanAllocation_NilCapMeansNoCeiling(t *testing.T) {
	// Resources có nhưng không đặt trần: allocation bám theo nhu cầu
	center := &centermodels.CollectionCenter{
		Resources: &centermodels.ResourceCaps{},
	}
	got := PlanAllocation(center, 5000, 1000, 2)
	if got.Trucks != 5 || got.Staff != 10 {
		t.Errorf("không đặt trần phải cấp đủ nhu cầu 5/10, got %d/%d", got.Trucks, got.Staff)
	}
}

func TestPlanAllocation_RatchetKeepsExisting(t *testing.T) {
	// Allocation hiện có cao hơn nhu cầu mới: không thu hồi
	center := &centermodels.CollectionCenter{
		AllocatedResources: &centermodels.AllocatedResources{Trucks: 5, Staff: 10},
	}
	got := PlanAllocation(center, 2500, 1000, 2)
	if got.Trucks != 5 {
		t.Errorf("ratchet phải giữ 5 xe đã cấp dù chỉ cần 3, got %d", got.Trucks)
	}
	if got.Staff != 10 {
		t.Errorf("ratchet phải giữ 10 nhân viên đã cấp, got %d", got.Staff)
	}
}

func TestPlanAllocation_RatchetGrowsWithDemand(t *testing.T) {
	center := &centermodels.CollectionCenter{
		AllocatedResources: &centermodels.AllocatedResources{Trucks: 1, Staff: 2},
	}
	got := PlanAllocation(center, 2500, 1000, 2)
	if got.Trucks != 3 || got.Staff != 6 {
		t.Errorf("nhu cầu vượt allocation cũ phải tăng lên 3/6, got %d/%d", got.Trucks, got.Staff)
	}
}

func TestPlanAllocation_RatchetOverridesCap(t *testing.T) {
	// Allocation cũ đã vượt trần (trần bị hạ sau khi cấp): không thu hồi
	center := &centermodels.CollectionCenter{
		Resources: &centermodels.ResourceCaps{
			Trucks: intPtr(2),
		},
		AllocatedResources: &centermodels.AllocatedResources{Trucks: 4, Staff: 8},
	}
	got := PlanAllocation(center, 5000, 1000, 2)
	if got.Trucks != 4 {
		t.Errorf("allocation cũ 4 xe vượt trần 2 vẫn phải được giữ, got %d", got.Trucks)
	}
}
