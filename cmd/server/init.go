package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"metro_waste/config"
	"metro_waste/internal/database"
	"metro_waste/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.WasteRequests = "waste_requests"
	global.MongoDB_ColNames.CollectionCenters = "collection_centers"
	global.MongoDB_ColNames.Vehicles = "vehicles"
	global.MongoDB_ColNames.Collectors = "collectors"
	global.MongoDB_ColNames.Schedules = "schedules"
	global.MongoDB_ColNames.Payments = "payments"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, time_slot, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các index nghiệp vụ. Unique index chống double-booking trên
	// schedules bắt buộc phải có trước khi nhận request tạo lịch.
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateBusinessIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create business indexes: %v", err)
	}
	logrus.Info("Created business indexes")
}
