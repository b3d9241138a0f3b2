// Package schedsvc - Test luồng CreateSchedule trên store giả lập in-memory:
// cardinality check của claim, chặn double-booking và asymmetry của các query.
package schedsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	scheddto "metro_waste/internal/api/schedule/dto"
	schedmodels "metro_waste/internal/api/schedule/models"
	wastemodels "metro_waste/internal/api/waste/models"
	"metro_waste/internal/common"
)

// fakeScheduleStore giữ schedules trong memory, áp dụng cùng ngữ nghĩa filter
// với store thật cho các query của ScheduleService.
type fakeScheduleStore struct {
	schedules []schedmodels.Schedule
	insertErr error
}

func (f *fakeScheduleStore) InsertOne(ctx context.Context, data schedmodels.Schedule) (schedmodels.Schedule, error) {
	if f.insertErr != nil {
		return schedmodels.Schedule{}, f.insertErr
	}
	data.ID = primitive.NewObjectID()
	f.schedules = append(f.schedules, data)
	return data, nil
}

func (f *fakeScheduleStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]schedmodels.Schedule, error) {
	results := []schedmodels.Schedule{}
	q, _ := filter.(bson.M)
	for _, s := range f.schedules {
		if id, ok := q["collectorId"].(primitive.ObjectID); ok && s.CollectorId != id {
			continue
		}
		if id, ok := q["centerId"].(primitive.ObjectID); ok && s.CenterId != id {
			continue
		}
		results = append(results, s)
	}
	return results, nil
}

func (f *fakeScheduleStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (schedmodels.Schedule, error) {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			return f.schedules[i], nil
		}
	}
	return schedmodels.Schedule{}, common.ErrNotFound
}

func (f *fakeScheduleStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	q, _ := filter.(bson.M)
	for _, s := range f.schedules {
		if s.CollectorId == q["collectorId"] && s.Date == q["date"] && s.Time == q["time"] &&
			s.Status != schedmodels.ScheduleStatusCanceled {
			return true, nil
		}
	}
	return false, nil
}

// fakeRequestStore giữ status của các waste request trong memory.
type fakeRequestStore struct {
	statuses map[primitive.ObjectID]string
}

func (f *fakeRequestStore) CountPending(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	var n int64
	for _, id := range ids {
		if f.statuses[id] == wastemodels.RequestStatusPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeRequestStore) UpdateStatusMany(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f.statuses[id]; ok {
			f.statuses[id] = status
			n++
		}
	}
	return n, nil
}

func (f *fakeRequestStore) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	q, _ := filter.(bson.M)
	idFilter, _ := q["_id"].(bson.M)
	ids, _ := idFilter["$in"].([]primitive.ObjectID)
	want, _ := q["status"].(string)
	set, _ := update.(bson.M)["$set"].(bson.M)
	next, _ := set["status"].(string)

	var n int64
	for _, id := range ids {
		if f.statuses[id] == want {
			f.statuses[id] = next
			n++
		}
	}
	return n, nil
}

type fakeEntityChecker struct {
	result scheddto.EntityValidation
}

func (f fakeEntityChecker) ValidateEntities(ctx context.Context, collectorID, centerID, vehicleID primitive.ObjectID) (scheddto.EntityValidation, error) {
	return f.result, nil
}

func newTestService(store *fakeScheduleStore, requests *fakeRequestStore) *ScheduleService {
	return &ScheduleService{
		store:      store,
		requestSvc: requests,
		validator:  fakeEntityChecker{result: scheddto.EntityValidation{IsValid: true}},
	}
}

func newCreateInput(requestIDs ...primitive.ObjectID) *scheddto.ScheduleCreateInput {
	selected := make([]string, 0, len(requestIDs))
	for _, id := range requestIDs {
		selected = append(selected, id.Hex())
	}
	return &scheddto.ScheduleCreateInput{
		CollectorId:      primitive.NewObjectID().Hex(),
		CenterId:         primitive.NewObjectID().Hex(),
		VehicleId:        primitive.NewObjectID().Hex(),
		Date:             "2026-08-15",
		Time:             "08:00",
		SelectedRequests: selected,
	}
}

func TestCreateSchedule_ClaimedRequestFailsWholeOperation(t *testing.T) {
	r1 := primitive.NewObjectID()
	r2 := primitive.NewObjectID()
	requests := &fakeRequestStore{statuses: map[primitive.ObjectID]string{
		r1: wastemodels.RequestStatusPending,
		r2: wastemodels.RequestStatusScheduled, // đã bị schedule khác claim
	}}
	store := &fakeScheduleStore{}
	svc := newTestService(store, requests)

	_, err := svc.CreateSchedule(context.Background(), newCreateInput(r1, r2))
	if !errors.Is(err, common.ErrRequestsClaimed) {
		t.Fatalf("một request đã claimed phải fail cả thao tác với ErrRequestsClaimed, got %v", err)
	}
	if requests.statuses[r1] != wastemodels.RequestStatusPending {
		t.Errorf("request pending không được đổi trạng thái khi thao tác fail, got %q", requests.statuses[r1])
	}
	if requests.statuses[r2] != wastemodels.RequestStatusScheduled {
		t.Errorf("request đã claimed phải giữ nguyên scheduled, got %q", requests.statuses[r2])
	}
	if len(store.schedules) != 0 {
		t.Errorf("không được tạo schedule nào, got %d", len(store.schedules))
	}
}

func TestCreateSchedule_ConflictOnIdenticalSlot(t *testing.T) {
	r1 := primitive.NewObjectID()
	requests := &fakeRequestStore{statuses: map[primitive.ObjectID]string{
		r1: wastemodels.RequestStatusPending,
	}}
	input := newCreateInput(r1)
	collectorID, _ := primitive.ObjectIDFromHex(input.CollectorId)

	store := &fakeScheduleStore{schedules: []schedmodels.Schedule{{
		ID:          primitive.NewObjectID(),
		CollectorId: collectorID,
		Date:        "2026-08-15",
		Time:        "08:00",
		Status:      schedmodels.ScheduleStatusPendingAcceptance,
	}}}
	svc := newTestService(store, requests)

	_, err := svc.CreateSchedule(context.Background(), input)
	if !errors.Is(err, common.ErrScheduleConflict) {
		t.Fatalf("slot (collector, date, time) trùng phải trả ErrScheduleConflict, got %v", err)
	}
	if requests.statuses[r1] != wastemodels.RequestStatusPending {
		t.Errorf("request không được claim khi tạo lịch fail, got %q", requests.statuses[r1])
	}
	if len(store.schedules) != 1 {
		t.Errorf("không được tạo thêm schedule, got %d", len(store.schedules))
	}
}

func TestCreateSchedule_CanceledScheduleFreesSlot(t *testing.T) {
	r1 := primitive.NewObjectID()
	requests := &fakeRequestStore{statuses: map[primitive.ObjectID]string{
		r1: wastemodels.RequestStatusPending,
	}}
	input := newCreateInput(r1)
	collectorID, _ := primitive.ObjectIDFromHex(input.CollectorId)

	// Schedule canceled cùng slot không giữ chỗ
	store := &fakeScheduleStore{schedules: []schedmodels.Schedule{{
		ID:          primitive.NewObjectID(),
		CollectorId: collectorID,
		Date:        "2026-08-15",
		Time:        "08:00",
		Status:      schedmodels.ScheduleStatusCanceled,
	}}}
	svc := newTestService(store, requests)

	created, err := svc.CreateSchedule(context.Background(), input)
	if err != nil {
		t.Fatalf("slot của schedule canceled phải dùng lại được: %v", err)
	}
	if created.Status != schedmodels.ScheduleStatusPendingAcceptance {
		t.Errorf("schedule mới phải ở pending-acceptance, got %q", created.Status)
	}
	if requests.statuses[r1] != wastemodels.RequestStatusScheduled {
		t.Errorf("request phải được claim sang scheduled, got %q", requests.statuses[r1])
	}
}

func TestCreateSchedule_DuplicateInsertRollsBackClaim(t *testing.T) {
	r1 := primitive.NewObjectID()
	r2 := primitive.NewObjectID()
	requests := &fakeRequestStore{statuses: map[primitive.ObjectID]string{
		r1: wastemodels.RequestStatusPending,
		r2: wastemodels.RequestStatusPending,
	}}
	// Pre-check không thấy conflict nhưng insert thua race: unique index trả
	// duplicate key
	store := &fakeScheduleStore{insertErr: common.ErrMongoDuplicate}
	svc := newTestService(store, requests)

	_, err := svc.CreateSchedule(context.Background(), newCreateInput(r1, r2))
	if !errors.Is(err, common.ErrScheduleConflict) {
		t.Fatalf("duplicate key khi insert phải map sang ErrScheduleConflict, got %v", err)
	}
	for _, id := range []primitive.ObjectID{r1, r2} {
		if requests.statuses[id] != wastemodels.RequestStatusPending {
			t.Errorf("request %s phải được rollback về pending, got %q", id.Hex(), requests.statuses[id])
		}
	}
	if len(store.schedules) != 0 {
		t.Errorf("không được lưu schedule nào, got %d", len(store.schedules))
	}
}

func TestCreateSchedule_MissingEntityRejectedBeforeClaim(t *testing.T) {
	r1 := primitive.NewObjectID()
	requests := &fakeRequestStore{statuses: map[primitive.ObjectID]string{
		r1: wastemodels.RequestStatusPending,
	}}
	store := &fakeScheduleStore{}
	svc := &ScheduleService{
		store:      store,
		requestSvc: requests,
		validator:  fakeEntityChecker{result: scheddto.EntityValidation{IsValid: false, Message: "Không tìm thấy collector"}},
	}

	_, err := svc.CreateSchedule(context.Background(), newCreateInput(r1))
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusBadRequest {
		t.Fatalf("entity thiếu phải trả lỗi 400, got %v", err)
	}
	if requests.statuses[r1] != wastemodels.RequestStatusPending {
		t.Errorf("request không được claim khi entity thiếu, got %q", requests.statuses[r1])
	}
}

func TestFindByCollector_EmptyIsNotFound(t *testing.T) {
	svc := newTestService(&fakeScheduleStore{}, &fakeRequestStore{statuses: map[primitive.ObjectID]string{}})

	_, err := svc.FindByCollector(context.Background(), primitive.NewObjectID())
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusNotFound {
		t.Fatalf("collector chưa có lịch phải trả 404, got %v", err)
	}
}

func TestFindByCenter_EmptyIsEmptyArray(t *testing.T) {
	svc := newTestService(&fakeScheduleStore{}, &fakeRequestStore{statuses: map[primitive.ObjectID]string{}})

	schedules, err := svc.FindByCenter(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("center chưa có lịch không phải lỗi: %v", err)
	}
	if schedules == nil {
		t.Fatal("kết quả phải là mảng rỗng, không phải nil")
	}
	if len(schedules) != 0 {
		t.Errorf("phải rỗng, got %d", len(schedules))
	}
}
