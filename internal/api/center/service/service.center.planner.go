// Package centersvc - Capacity Planner: quy đổi demand theo center thành số
// truck/staff cần cấp, có trần cấu hình và sàn ratchet (allocation không bao
// giờ giảm giữa các lần chạy).
package centersvc

import (
	"context"
	"fmt"
	"math"
	"sync"

	basesvc "metro_waste/internal/api/base/service"
	centerdto "metro_waste/internal/api/center/dto"
	centermodels "metro_waste/internal/api/center/models"
	"metro_waste/internal/common"
	"metro_waste/internal/global"
	"metro_waste/internal/logger"
	wastesvc "metro_waste/internal/api/waste/service"
)

// PlanAllocation tính allocation mới cho một center từ tổng demand.
//
//  1. trucksNeeded = ceil(totalQuantity / truckCapacity)
//  2. staffNeeded = trucksNeeded * staffPerTruck
//  3. Trần: resources.trucks/staff nếu được cấu hình, không thì chính nhu cầu
//     (không đặt trần = không giới hạn quá nhu cầu)
//  4. Sàn ratchet: không giảm dưới allocation hiện có — tài nguyên đã cam kết
//     không bị thu hồi khi demand tụt.
func PlanAllocation(center *centermodels.CollectionCenter, totalQuantity float64, truckCapacity, staffPerTruck int) centermodels.AllocatedResources {
	trucksNeeded := int(math.Ceil(totalQuantity / float64(truckCapacity)))
	staffNeeded := trucksNeeded * staffPerTruck

	maxTrucks := trucksNeeded
	maxStaff := staffNeeded
	if center.Resources != nil {
		if center.Resources.Trucks != nil {
			maxTrucks = *center.Resources.Trucks
		}
		if center.Resources.Staff != nil {
			maxStaff = *center.Resources.Staff
		}
	}

	existingTrucks := 0
	existingStaff := 0
	if center.AllocatedResources != nil {
		existingTrucks = center.AllocatedResources.Trucks
		existingStaff = center.AllocatedResources.Staff
	}

	trucksFinal := maxInt(existingTrucks, minInt(maxTrucks, trucksNeeded))
	staffFinal := maxInt(existingStaff, minInt(maxStaff, staffNeeded))

	return centermodels.AllocatedResources{
		Trucks:        trucksFinal,
		Staff:         staffFinal,
		TotalQuantity: totalQuantity,
	}
}

// PlannerService chạy batch allocation trên toàn bộ center.
type PlannerService struct {
	centerSvc *basesvc.BaseServiceMongoImpl[centermodels.CollectionCenter]
	demandSvc *wastesvc.DemandService

	truckCapacity int
	staffPerTruck int

	// Khóa theo center: hai lần chạy planner đồng thời không được race trên
	// read-modify-write của cùng một center.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPlannerService tạo PlannerService mới, đọc TRUCK_CAPACITY / STAFF_PER_TRUCK
// từ cấu hình server.
func NewPlannerService() (*PlannerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CollectionCenters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CollectionCenters, common.ErrNotFound)
	}
	demandSvc, err := wastesvc.NewDemandService()
	if err != nil {
		return nil, fmt.Errorf("tạo DemandService: %w", err)
	}

	truckCapacity := 1000
	staffPerTruck := 2
	if global.MongoDB_ServerConfig != nil {
		if global.MongoDB_ServerConfig.TruckCapacity > 0 {
			truckCapacity = global.MongoDB_ServerConfig.TruckCapacity
		}
		if global.MongoDB_ServerConfig.StaffPerTruck > 0 {
			staffPerTruck = global.MongoDB_ServerConfig.StaffPerTruck
		}
	}

	return &PlannerService{
		centerSvc:     basesvc.NewBaseServiceMongo[centermodels.CollectionCenter](coll),
		demandSvc:     demandSvc,
		truckCapacity: truckCapacity,
		staffPerTruck: staffPerTruck,
		locks:         make(map[string]*sync.Mutex),
	}, nil
}

// AllocateResources chạy một lượt planner trên toàn bộ center với demand hiện
// hành. Mỗi center là một đơn vị commit độc lập: center lỗi được báo trong
// kết quả của chính nó, các center khác không bị rollback.
func (s *PlannerService) AllocateResources(ctx context.Context) ([]centerdto.AllocationResult, error) {
	demand, err := s.demandSvc.AggregateByCenter(ctx)
	if err != nil {
		return nil, err
	}

	centers, err := s.centerSvc.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	results := make([]centerdto.AllocationResult, 0, len(centers))
	for i := range centers {
		results = append(results, s.allocateCenter(ctx, &centers[i], demand[centers[i].ID.Hex()]))
	}
	return results, nil
}

// allocateCenter serialize read-modify-write theo từng center rồi persist
// allocation mới.
func (s *PlannerService) allocateCenter(ctx context.Context, center *centermodels.CollectionCenter, totalQuantity float64) centerdto.AllocationResult {
	lock := s.centerLock(center.ID.Hex())
	lock.Lock()
	defer lock.Unlock()

	// Đọc lại allocation hiện có trong lúc giữ khóa: bản snapshot từ batch
	// Find có thể đã cũ nếu một lượt planner khác vừa ghi.
	current, err := s.centerSvc.FindOneById(ctx, center.ID)
	if err != nil {
		return allocationFailure(center, totalQuantity, err)
	}

	allocation := PlanAllocation(&current, totalQuantity, s.truckCapacity, s.staffPerTruck)

	_, err = s.centerSvc.UpdateById(ctx, center.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"allocatedResources": allocation},
	})
	if err != nil {
		return allocationFailure(center, totalQuantity, err)
	}

	return centerdto.AllocationResult{
		CenterId:        center.ID.Hex(),
		CenterName:      current.Name,
		TrucksAllocated: allocation.Trucks,
		StaffAllocated:  allocation.Staff,
		TotalQuantity:   allocation.TotalQuantity,
	}
}

func (s *PlannerService) centerLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// allocationFailure ghi log và build kết quả lỗi cho một center,
// không chặn các center còn lại trong batch.
func allocationFailure(center *centermodels.CollectionCenter, totalQuantity float64, err error) centerdto.AllocationResult {
	logger.GetErrorLogger().WithFields(map[string]interface{}{
		"centerId": center.ID.Hex(),
		"error":    err.Error(),
	}).Error("Allocation cho center thất bại")

	return centerdto.AllocationResult{
		CenterId:      center.ID.Hex(),
		CenterName:    center.Name,
		TotalQuantity: totalQuantity,
		Error:         err.Error(),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
