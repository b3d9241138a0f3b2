// Package schedsvc - Entity Validator: kiểm tra referential integrity của
// collector/center/vehicle trước mọi phép ghi scheduling.
package schedsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "metro_waste/internal/api/base/service"
	centermodels "metro_waste/internal/api/center/models"
	scheddto "metro_waste/internal/api/schedule/dto"
	schedmodels "metro_waste/internal/api/schedule/models"
	vehiclemodels "metro_waste/internal/api/vehicle/models"
	"metro_waste/internal/common"
	"metro_waste/internal/global"
)

// EntityValidator kiểm tra tồn tại của các entity được schedule tham chiếu.
type EntityValidator struct {
	collectorSvc *basesvc.BaseServiceMongoImpl[schedmodels.Collector]
	centerSvc    *basesvc.BaseServiceMongoImpl[centermodels.CollectionCenter]
	vehicleSvc   *basesvc.BaseServiceMongoImpl[vehiclemodels.Vehicle]
}

// NewEntityValidator tạo EntityValidator mới.
func NewEntityValidator() (*EntityValidator, error) {
	collectorColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Collectors)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Collectors, common.ErrNotFound)
	}
	centerColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CollectionCenters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CollectionCenters, common.ErrNotFound)
	}
	vehicleColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vehicles)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Vehicles, common.ErrNotFound)
	}
	return &EntityValidator{
		collectorSvc: basesvc.NewBaseServiceMongo[schedmodels.Collector](collectorColl),
		centerSvc:    basesvc.NewBaseServiceMongo[centermodels.CollectionCenter](centerColl),
		vehicleSvc:   basesvc.NewBaseServiceMongo[vehiclemodels.Vehicle](vehicleColl),
	}, nil
}

// ValidateEntities kiểm tra collector, center và vehicle đều tồn tại.
// Trả về {isValid, message} thay vì error — entity thiếu là kết quả nghiệp vụ,
// không phải lỗi hệ thống.
func (v *EntityValidator) ValidateEntities(ctx context.Context, collectorID, centerID, vehicleID primitive.ObjectID) (scheddto.EntityValidation, error) {
	exists, err := v.collectorSvc.DocumentExists(ctx, bson.M{"_id": collectorID})
	if err != nil {
		return scheddto.EntityValidation{}, err
	}
	if !exists {
		return scheddto.EntityValidation{IsValid: false, Message: "Không tìm thấy collector"}, nil
	}

	exists, err = v.centerSvc.DocumentExists(ctx, bson.M{"_id": centerID})
	if err != nil {
		return scheddto.EntityValidation{}, err
	}
	if !exists {
		return scheddto.EntityValidation{IsValid: false, Message: "Không tìm thấy collection center"}, nil
	}

	exists, err = v.vehicleSvc.DocumentExists(ctx, bson.M{"_id": vehicleID})
	if err != nil {
		return scheddto.EntityValidation{}, err
	}
	if !exists {
		return scheddto.EntityValidation{IsValid: false, Message: "Không tìm thấy vehicle"}, nil
	}

	return scheddto.EntityValidation{IsValid: true}, nil
}
