// Package schedsvc - Scheduling Conflict Detector & Lifecycle Manager.
//
// CreateSchedule validate theo thứ tự cố định (lỗi đầu tiên thắng), chặn
// double-booking theo slot (collectorId, date, time) và claim các waste request
// pending sang scheduled như một đơn vị công việc: claim trước, insert sau,
// insert fail thì rollback bù trừ. Guard cuối cùng cho double-booking là
// partial unique index trên collection schedules — pre-check trong code chỉ là
// fast path cho message đẹp.
package schedsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "metro_waste/internal/api/base/service"
	scheddto "metro_waste/internal/api/schedule/dto"
	schedmodels "metro_waste/internal/api/schedule/models"
	wastemodels "metro_waste/internal/api/waste/models"
	wastesvc "metro_waste/internal/api/waste/service"
	"metro_waste/internal/common"
	"metro_waste/internal/global"
	"metro_waste/internal/logger"
	"metro_waste/internal/utility"
)

// scheduleStore là tập thao tác persistence ScheduleService cần trên collection
// schedules. *basesvc.BaseServiceMongoImpl[Schedule] thỏa interface này.
type scheduleStore interface {
	InsertOne(ctx context.Context, data schedmodels.Schedule) (schedmodels.Schedule, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]schedmodels.Schedule, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (schedmodels.Schedule, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// requestClaimer là các thao tác claim/rollback trạng thái waste request mà
// luồng scheduling cần. *wastesvc.WasteRequestService thỏa interface này.
type requestClaimer interface {
	CountPending(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	UpdateStatusMany(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error)
}

// entityChecker kiểm tra referential integrity của collector/center/vehicle.
type entityChecker interface {
	ValidateEntities(ctx context.Context, collectorID, centerID, vehicleID primitive.ObjectID) (scheddto.EntityValidation, error)
}

// ScheduleService xử lý tạo lịch, chuyển trạng thái và các query view.
type ScheduleService struct {
	store      scheduleStore
	requestSvc requestClaimer
	validator  entityChecker
}

// NewScheduleService tạo ScheduleService mới trên registry collections.
func NewScheduleService() (*ScheduleService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Schedules)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Schedules, common.ErrNotFound)
	}
	requestSvc, err := wastesvc.NewWasteRequestService()
	if err != nil {
		return nil, fmt.Errorf("tạo WasteRequestService: %w", err)
	}
	validator, err := NewEntityValidator()
	if err != nil {
		return nil, fmt.Errorf("tạo EntityValidator: %w", err)
	}
	return &ScheduleService{
		store:      basesvc.NewBaseServiceMongo[schedmodels.Schedule](coll),
		requestSvc: requestSvc,
		validator:  validator,
	}, nil
}

// BuildConflictFilter dựng filter tìm schedule chưa canceled trùng slot của
// một collector — exact match trên date và time-string, không phải interval.
func BuildConflictFilter(collectorID primitive.ObjectID, date, time string) bson.M {
	return bson.M{
		"collectorId": collectorID,
		"date":        date,
		"time":        time,
		"status":      bson.M{"$ne": schedmodels.ScheduleStatusCanceled},
	}
}

// CreateSchedule tạo lịch thu gom mới.
//
// Thứ tự precondition (lỗi đầu tiên thắng):
//  1. Các field scalar hợp lệ, danh sách request không rỗng (đã qua DTO validate)
//  2. Collector/center/vehicle tồn tại (Entity Validator)
//  3. Không có schedule chưa canceled nào trùng (collectorId, date, time) — 409
//  4. Mọi request được chọn đều tồn tại và còn pending (cardinality check) — 400
//
// Hiệu ứng: flip các request sang scheduled rồi insert schedule. Insert fail
// → rollback các request vừa claim về pending; duplicate key từ unique index
// → ErrScheduleConflict (thua race với một request đồng thời).
func (s *ScheduleService) CreateSchedule(ctx context.Context, input *scheddto.ScheduleCreateInput) (*schedmodels.Schedule, error) {
	collectorID := utility.String2ObjectID(input.CollectorId)
	centerID := utility.String2ObjectID(input.CenterId)
	vehicleID := utility.String2ObjectID(input.VehicleId)
	if collectorID.IsZero() || centerID.IsZero() || vehicleID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"collectorId, centerId và vehicleId phải là ObjectID hợp lệ", common.StatusBadRequest, nil)
	}

	requestIDs, ok := utility.StringArray2ObjectIDArray(input.SelectedRequests)
	if !ok || len(requestIDs) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"Chọn ít nhất một yêu cầu pending hợp lệ", common.StatusBadRequest, nil)
	}

	date := utility.NormalizeSlotDate(input.Date)
	timeSlot := utility.NormalizeSlotTime(input.Time)

	// 2. Referential integrity
	validation, err := s.validator.ValidateEntities(ctx, collectorID, centerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if !validation.IsValid {
		return nil, common.NewError(common.ErrCodeValidationInput, validation.Message, common.StatusBadRequest, nil)
	}

	// 3. Double-booking fast path. Guard thật sự là unique index — xem
	// database.BuildScheduleConflictIndex.
	conflict, err := s.store.DocumentExists(ctx, BuildConflictFilter(collectorID, date, timeSlot))
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, common.ErrScheduleConflict
	}

	// 4. Cardinality: số request còn pending phải đúng bằng số được chọn,
	// không thì có id không tồn tại hoặc đã bị claim.
	pendingCount, err := s.requestSvc.CountPending(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	if pendingCount != int64(len(requestIDs)) {
		return nil, common.ErrRequestsClaimed
	}

	// Claim trước, insert sau
	if _, err := s.requestSvc.UpdateStatusMany(ctx, requestIDs, wastemodels.RequestStatusScheduled); err != nil {
		return nil, err
	}

	doc := schedmodels.Schedule{
		CollectorId: collectorID,
		CenterId:    centerID,
		VehicleId:   vehicleID,
		Date:        date,
		Time:        timeSlot,
		Status:      schedmodels.ScheduleStatusPendingAcceptance,
		Requests:    requestIDs,
	}

	created, err := s.store.InsertOne(ctx, doc)
	if err != nil {
		s.rollbackClaim(ctx, requestIDs)
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.ErrScheduleConflict
		}
		return nil, err
	}

	return &created, nil
}

// rollbackClaim trả các request vừa claim về pending khi insert schedule thất
// bại. Chỉ đụng các request đang scheduled trong tập id — request đã chuyển
// tiếp bởi tác vụ khác không bị ghi đè.
func (s *ScheduleService) rollbackClaim(ctx context.Context, requestIDs []primitive.ObjectID) {
	filter := bson.M{
		"_id":    bson.M{"$in": requestIDs},
		"status": wastemodels.RequestStatusScheduled,
	}
	update := bson.M{"$set": bson.M{"status": wastemodels.RequestStatusPending}}
	if _, err := s.requestSvc.UpdateMany(ctx, filter, update, nil); err != nil {
		// Rollback fail là defect nhất quán dữ liệu — phải thấy được trong log
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"requestIds": requestIDs,
			"error":      err.Error(),
		}).Error("Rollback claim sau khi insert schedule thất bại")
	}
}

// AcceptSchedule chuyển một schedule sang accepted. Không cascade ngược về
// trạng thái của các waste request.
func (s *ScheduleService) AcceptSchedule(ctx context.Context, scheduleID primitive.ObjectID) (*schedmodels.Schedule, error) {
	return s.updateStatus(ctx, scheduleID, schedmodels.ScheduleStatusAccepted)
}

// CancelSchedule chuyển một schedule sang canceled. Không cascade ngược về
// trạng thái của các waste request.
func (s *ScheduleService) CancelSchedule(ctx context.Context, scheduleID primitive.ObjectID) (*schedmodels.Schedule, error) {
	return s.updateStatus(ctx, scheduleID, schedmodels.ScheduleStatusCanceled)
}

func (s *ScheduleService) updateStatus(ctx context.Context, scheduleID primitive.ObjectID, status string) (*schedmodels.Schedule, error) {
	updated, err := s.store.UpdateById(ctx, scheduleID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindAll trả về toàn bộ schedule.
func (s *ScheduleService) FindAll(ctx context.Context) ([]schedmodels.Schedule, error) {
	return s.store.Find(ctx, bson.D{}, nil)
}

// FindByCollector trả về các schedule của một collector.
// Không có schedule nào → NotFound (hành vi của hệ thống cũ; FindByCenter
// thì trả mảng rỗng — asymmetry được giữ nguyên có chủ đích).
func (s *ScheduleService) FindByCollector(ctx context.Context, collectorID primitive.ObjectID) ([]schedmodels.Schedule, error) {
	schedules, err := s.store.Find(ctx, bson.M{"collectorId": collectorID}, nil)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery,
			"Không tìm thấy schedule nào cho collector này", common.StatusNotFound, nil)
	}
	return schedules, nil
}

// FindByCenter trả về các schedule của một center, rỗng → mảng rỗng.
func (s *ScheduleService) FindByCenter(ctx context.Context, centerID primitive.ObjectID) ([]schedmodels.Schedule, error) {
	return s.store.Find(ctx, bson.M{"centerId": centerID}, nil)
}
