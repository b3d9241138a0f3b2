// Package centersvc - Service cho domain center: CRUD điểm tập kết và
// Capacity Planner.
package centersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "metro_waste/internal/api/base/service"
	centerdto "metro_waste/internal/api/center/dto"
	centermodels "metro_waste/internal/api/center/models"
	"metro_waste/internal/common"
	"metro_waste/internal/global"
)

// CenterService xử lý CRUD collection center.
type CenterService struct {
	*basesvc.BaseServiceMongoImpl[centermodels.CollectionCenter]
}

// NewCenterService tạo CenterService mới.
func NewCenterService() (*CenterService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CollectionCenters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CollectionCenters, common.ErrNotFound)
	}
	return &CenterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[centermodels.CollectionCenter](coll),
	}, nil
}

// CreateCenter tạo center mới với trần tài nguyên tùy chọn.
func (s *CenterService) CreateCenter(ctx context.Context, input *centerdto.CenterCreateInput) (*centermodels.CollectionCenter, error) {
	doc := centermodels.CollectionCenter{
		Name:     input.Name,
		Location: input.Location,
	}
	if input.Trucks != nil || input.Staff != nil {
		doc.Resources = &centermodels.ResourceCaps{
			Trucks: input.Trucks,
			Staff:  input.Staff,
		}
	}

	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListCenters trả về toàn bộ center.
func (s *CenterService) ListCenters(ctx context.Context) ([]centermodels.CollectionCenter, error) {
	return s.Find(ctx, bson.D{}, nil)
}
