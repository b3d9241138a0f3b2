// Package wastesvc - Demand aggregation: quy đổi các yêu cầu thu gom thành
// tổng khối lượng theo center và báo cáo cao điểm theo slot (date, time, center).
package wastesvc

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "metro_waste/internal/api/base/service"
	centermodels "metro_waste/internal/api/center/models"
	wastedto "metro_waste/internal/api/waste/dto"
	wastemodels "metro_waste/internal/api/waste/models"
	"metro_waste/internal/common"
	"metro_waste/internal/global"
	"metro_waste/internal/utility"
)

// UnknownCenterName là tên hiển thị khi không resolve được center tham chiếu.
const UnknownCenterName = "Unknown Center"

// AggregateDemand gom tổng quantity theo centerId (hex) trên toàn bộ tập request.
// Không lọc theo status — mọi trạng thái đều tính vào demand. Record có quantity
// hỏng đóng góp 0, không làm fail cả batch; record thiếu center bị bỏ qua.
func AggregateDemand(requests []wastemodels.WasteRequest) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range requests {
		if r.CollectionCenterId.IsZero() {
			continue
		}
		parsed := utility.SafeParseQuantity(r.Quantity)
		totals[r.CollectionCenterId.Hex()] += parsed.Value
	}
	return totals
}

// BuildPeakPeriods gom tổng quantity theo slot (date, time, center name) và
// sắp xếp giảm dần theo tổng. centerNames map từ centerId hex sang tên hiển thị;
// không resolve được → UnknownCenterName. Input rỗng → slice rỗng, không lỗi.
func BuildPeakPeriods(requests []wastemodels.WasteRequest, centerNames map[string]string) []wastedto.PeakPeriod {
	type slotKey struct {
		date   string
		time   string
		center string
	}

	totals := make(map[slotKey]float64)
	for _, r := range requests {
		center := UnknownCenterName
		if !r.CollectionCenterId.IsZero() {
			if name, ok := centerNames[r.CollectionCenterId.Hex()]; ok && name != "" {
				center = name
			}
		}
		key := slotKey{
			date:   utility.NormalizeSlotDate(r.CollectionDate),
			time:   utility.NormalizeSlotTime(r.CollectionTime),
			center: center,
		}
		parsed := utility.SafeParseQuantity(r.Quantity)
		totals[key] += parsed.Value
	}

	periods := make([]wastedto.PeakPeriod, 0, len(totals))
	for key, total := range totals {
		periods = append(periods, wastedto.PeakPeriod{
			Date:          key.date,
			Time:          key.time,
			Center:        key.center,
			TotalQuantity: total,
		})
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].TotalQuantity > periods[j].TotalQuantity
	})

	return periods
}

// DemandService đọc toàn bộ request + center và chạy aggregation.
type DemandService struct {
	requestSvc *basesvc.BaseServiceMongoImpl[wastemodels.WasteRequest]
	centerSvc  *basesvc.BaseServiceMongoImpl[centermodels.CollectionCenter]
}

// NewDemandService tạo DemandService mới.
func NewDemandService() (*DemandService, error) {
	reqColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WasteRequests)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WasteRequests, common.ErrNotFound)
	}
	centerColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CollectionCenters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CollectionCenters, common.ErrNotFound)
	}
	return &DemandService{
		requestSvc: basesvc.NewBaseServiceMongo[wastemodels.WasteRequest](reqColl),
		centerSvc:  basesvc.NewBaseServiceMongo[centermodels.CollectionCenter](centerColl),
	}, nil
}

// AggregateByCenter đọc toàn bộ request và trả về tổng demand theo centerId.
func (s *DemandService) AggregateByCenter(ctx context.Context) (map[string]float64, error) {
	requests, err := s.requestSvc.Find(ctx, bson.D{}, nil)
	if err != nil {
		return nil, err
	}
	return AggregateDemand(requests), nil
}

// PeakPeriods đọc toàn bộ request + center và trả về báo cáo cao điểm theo slot.
func (s *DemandService) PeakPeriods(ctx context.Context) ([]wastedto.PeakPeriod, error) {
	requests, err := s.requestSvc.Find(ctx, bson.D{}, nil)
	if err != nil {
		return nil, err
	}

	centers, err := s.centerSvc.Find(ctx, bson.D{}, nil)
	if err != nil {
		return nil, err
	}
	centerNames := make(map[string]string, len(centers))
	for _, c := range centers {
		centerNames[c.ID.Hex()] = c.Name
	}

	return BuildPeakPeriods(requests, centerNames), nil
}
