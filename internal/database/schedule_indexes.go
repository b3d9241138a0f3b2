// Package database - Index cho các collection nghiệp vụ. Quan trọng nhất là
// partial unique index chống double-booking trên schedules: pre-check ở tầng
// service chỉ là fast-path, index này mới là guard cuối cùng khi có race.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"metro_waste/internal/global"
)

// ScheduleConflictIndexName là tên của unique index chống trùng lịch
const ScheduleConflictIndexName = "schedule_collector_slot_unique"

// BuildScheduleConflictIndex trả về index model cho ràng buộc
// (collectorId, date, time) duy nhất trong các schedule chưa bị hủy.
// Partial filter loại schedule canceled để slot được giải phóng khi hủy lịch.
func BuildScheduleConflictIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{
			{Key: "collectorId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: options.Index().
			SetName(ScheduleConflictIndexName).
			SetUnique(true).
			SetPartialFilterExpression(bson.D{
				{Key: "status", Value: bson.D{{Key: "$ne", Value: "canceled"}}},
			}),
	}
}

// CreateBusinessIndexes tạo các index nghiệp vụ. Gọi một lần lúc khởi động server.
func CreateBusinessIndexes(ctx context.Context, db *mongo.Database) error {
	// schedules: unique (collectorId, date, time) trong các schedule chưa hủy
	schedules := db.Collection(global.MongoDB_ColNames.Schedules)
	if _, err := schedules.Indexes().CreateOne(ctx, BuildScheduleConflictIndex()); err != nil && !isIndexExistsError(err) {
		return err
	}

	// schedules: centerId — query findByCenter
	if _, err := schedules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "centerId", Value: 1}},
		Options: options.Index().SetName("schedule_center"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// schedules: collectorId — query findByCollector
	if _, err := schedules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "collectorId", Value: 1}},
		Options: options.Index().SetName("schedule_collector"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// waste_requests: (collectionCenterId, status) — demand aggregation và claim check
	wasteRequests := db.Collection(global.MongoDB_ColNames.WasteRequests)
	if _, err := wasteRequests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "collectionCenterId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("waste_request_center_status").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// waste_requests: (residentId, createdAt desc) — danh sách request của resident
	if _, err := wasteRequests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "residentId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("waste_request_resident_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// vehicles: centerId — query xe theo center
	vehicles := db.Collection(global.MongoDB_ColNames.Vehicles)
	if _, err := vehicles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "centerId", Value: 1}},
		Options: options.Index().SetName("vehicle_center"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// payments: (residentId, createdAt desc) — lịch sử thanh toán của resident
	payments := db.Collection(global.MongoDB_ColNames.Payments)
	if _, err := payments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "residentId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("payment_resident_created").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
