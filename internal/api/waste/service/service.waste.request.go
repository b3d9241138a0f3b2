// Package wastesvc - Service cho domain waste: CRUD yêu cầu thu gom
// và demand aggregation.
package wastesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "metro_waste/internal/api/base/service"
	centermodels "metro_waste/internal/api/center/models"
	wastedto "metro_waste/internal/api/waste/dto"
	wastemodels "metro_waste/internal/api/waste/models"
	"metro_waste/internal/common"
	"metro_waste/internal/global"
	"metro_waste/internal/utility"
)

// WasteRequestService xử lý CRUD yêu cầu thu gom.
type WasteRequestService struct {
	*basesvc.BaseServiceMongoImpl[wastemodels.WasteRequest]
	centerSvc *basesvc.BaseServiceMongoImpl[centermodels.CollectionCenter]
}

// NewWasteRequestService tạo WasteRequestService mới.
func NewWasteRequestService() (*WasteRequestService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WasteRequests)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WasteRequests, common.ErrNotFound)
	}
	centerColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CollectionCenters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CollectionCenters, common.ErrNotFound)
	}
	return &WasteRequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[wastemodels.WasteRequest](coll),
		centerSvc:            basesvc.NewBaseServiceMongo[centermodels.CollectionCenter](centerColl),
	}, nil
}

// CreateRequest tạo yêu cầu thu gom mới ở trạng thái pending.
// Center tham chiếu phải tồn tại; quantity phải coerce được về số hữu hạn không âm.
func (s *WasteRequestService) CreateRequest(ctx context.Context, input *wastedto.WasteRequestCreateInput) (*wastemodels.WasteRequest, error) {
	residentID := utility.String2ObjectID(input.ResidentId)
	if residentID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationInput, "residentId không hợp lệ", common.StatusBadRequest, nil)
	}

	centerID := utility.String2ObjectID(input.CollectionCenterId)
	if centerID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationInput, "collectionCenterId không hợp lệ", common.StatusBadRequest, nil)
	}

	exists, err := s.centerSvc.DocumentExists(ctx, bson.M{"_id": centerID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy collection center", common.StatusNotFound, nil)
	}

	parsed := utility.SafeParseQuantity(input.Quantity)
	if !parsed.Coerce {
		return nil, common.NewError(common.ErrCodeValidationInput, "quantity phải là số hữu hạn không âm", common.StatusBadRequest, nil)
	}

	doc := wastemodels.WasteRequest{
		ResidentId:         residentID,
		WasteType:          input.WasteType,
		Quantity:           parsed.Value,
		CollectionCenterId: centerID,
		CollectionDate:     utility.NormalizeSlotDate(input.CollectionDate),
		CollectionTime:     utility.NormalizeSlotTime(input.CollectionTime),
		Status:             wastemodels.RequestStatusPending,
		Address:            input.Address,
	}

	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByResident trả về các yêu cầu của một resident, mới nhất trước.
func (s *WasteRequestService) FindByResident(ctx context.Context, residentID primitive.ObjectID) ([]wastemodels.WasteRequest, error) {
	filter := bson.M{"residentId": residentID}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// GetProgress trả về view tiến độ các yêu cầu của một resident.
// Resident chưa có yêu cầu nào → NotFound (hành vi của hệ thống cũ).
func (s *WasteRequestService) GetProgress(ctx context.Context, residentID primitive.ObjectID) ([]wastedto.RequestProgress, error) {
	requests, err := s.FindByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Resident chưa có yêu cầu thu gom nào", common.StatusNotFound, nil)
	}

	progress := make([]wastedto.RequestProgress, 0, len(requests))
	for _, r := range requests {
		progress = append(progress, wastedto.RequestProgress{
			RequestId: r.ID,
			WasteType: r.WasteType,
			Status:    r.Status,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return progress, nil
}

// UpdateRequest cập nhật một phần yêu cầu: chỉ ghi các field client gửi lên.
// Quantity (nếu có) phải coerce được về số hữu hạn không âm.
func (s *WasteRequestService) UpdateRequest(ctx context.Context, id primitive.ObjectID, input *wastedto.WasteRequestUpdateInput) (*wastemodels.WasteRequest, error) {
	set := map[string]interface{}{}

	if input.WasteType != "" {
		set["wasteType"] = input.WasteType
	}
	if input.Quantity != nil {
		parsed := utility.SafeParseQuantity(input.Quantity)
		if !parsed.Coerce {
			return nil, common.NewError(common.ErrCodeValidationInput, "quantity phải là số hữu hạn không âm", common.StatusBadRequest, nil)
		}
		set["quantity"] = parsed.Value
	}
	if input.CollectionCenterId != "" {
		centerID := utility.String2ObjectID(input.CollectionCenterId)
		if centerID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationInput, "collectionCenterId không hợp lệ", common.StatusBadRequest, nil)
		}
		exists, err := s.centerSvc.DocumentExists(ctx, bson.M{"_id": centerID})
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy collection center", common.StatusNotFound, nil)
		}
		set["collectionCenterId"] = centerID
	}
	if input.CollectionDate != "" {
		set["collectionDate"] = utility.NormalizeSlotDate(input.CollectionDate)
	}
	if input.CollectionTime != "" {
		set["collectionTime"] = utility.NormalizeSlotTime(input.CollectionTime)
	}
	if input.Address != "" {
		set["address"] = input.Address
	}

	if len(set) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có field nào để cập nhật", common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRequest xóa một yêu cầu thu gom.
func (s *WasteRequestService) DeleteRequest(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}

// UpdateStatusMany chuyển trạng thái hàng loạt cho một tập request id,
// trả về số bản ghi bị ảnh hưởng (updateMany semantics — áp dụng vô điều kiện).
func (s *WasteRequestService) UpdateStatusMany(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{"status": status}}
	return s.UpdateMany(ctx, filter, update, nil)
}

// CountPending đếm số request đang pending trong một tập id (cardinality check
// cho scheduling: count phải bằng len(ids) thì mới được claim).
func (s *WasteRequestService) CountPending(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	filter := bson.M{
		"_id":    bson.M{"$in": ids},
		"status": wastemodels.RequestStatusPending,
	}
	return s.CountDocuments(ctx, filter)
}
