// Package vehiclesvc - Service cho domain vehicle.
package vehiclesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "metro_waste/internal/api/base/service"
	centermodels "metro_waste/internal/api/center/models"
	vehicledto "metro_waste/internal/api/vehicle/dto"
	vehiclemodels "metro_waste/internal/api/vehicle/models"
	"metro_waste/internal/common"
	"metro_waste/internal/global"
	"metro_waste/internal/utility"
)

// VehicleService xử lý CRUD xe thu gom.
type VehicleService struct {
	*basesvc.BaseServiceMongoImpl[vehiclemodels.Vehicle]
	centerSvc *basesvc.BaseServiceMongoImpl[centermodels.CollectionCenter]
}

// NewVehicleService tạo VehicleService mới.
func NewVehicleService() (*VehicleService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vehicles)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Vehicles, common.ErrNotFound)
	}
	centerColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CollectionCenters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CollectionCenters, common.ErrNotFound)
	}
	return &VehicleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[vehiclemodels.Vehicle](coll),
		centerSvc:            basesvc.NewBaseServiceMongo[centermodels.CollectionCenter](centerColl),
	}, nil
}

// CreateVehicle tạo vehicle mới, center tham chiếu phải tồn tại.
func (s *VehicleService) CreateVehicle(ctx context.Context, input *vehicledto.VehicleCreateInput) (*vehiclemodels.Vehicle, error) {
	centerID := utility.String2ObjectID(input.CenterId)
	if centerID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationInput, "centerId không hợp lệ", common.StatusBadRequest, nil)
	}

	exists, err := s.centerSvc.DocumentExists(ctx, bson.M{"_id": centerID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy collection center", common.StatusNotFound, nil)
	}

	doc := vehiclemodels.Vehicle{
		CenterId:    centerID,
		PlateNumber: input.PlateNumber,
		VehicleType: input.VehicleType,
		Capacity:    input.Capacity,
	}

	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListVehicles trả về toàn bộ vehicle.
func (s *VehicleService) ListVehicles(ctx context.Context) ([]vehiclemodels.Vehicle, error) {
	return s.Find(ctx, bson.D{}, nil)
}

// FindByCenter trả về các vehicle của một center.
// Không có xe nào → mảng rỗng, luôn 200 (hành vi của hệ thống cũ).
func (s *VehicleService) FindByCenter(ctx context.Context, centerID primitive.ObjectID) ([]vehiclemodels.Vehicle, error) {
	return s.Find(ctx, bson.M{"centerId": centerID}, nil)
}

// UpdateVehicle cập nhật một phần vehicle: chỉ ghi các field client gửi lên.
func (s *VehicleService) UpdateVehicle(ctx context.Context, id primitive.ObjectID, input *vehicledto.VehicleUpdateInput) (*vehiclemodels.Vehicle, error) {
	set := map[string]interface{}{}

	if input.CenterId != "" {
		centerID := utility.String2ObjectID(input.CenterId)
		if centerID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationInput, "centerId không hợp lệ", common.StatusBadRequest, nil)
		}
		exists, err := s.centerSvc.DocumentExists(ctx, bson.M{"_id": centerID})
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy collection center", common.StatusNotFound, nil)
		}
		set["centerId"] = centerID
	}
	if input.PlateNumber != "" {
		set["plateNumber"] = input.PlateNumber
	}
	if input.VehicleType != "" {
		set["vehicleType"] = input.VehicleType
	}
	if input.Capacity > 0 {
		set["capacity"] = input.Capacity
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

// DeleteVehicle xóa một vehicle.
func (s *VehicleService) DeleteVehicle(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
