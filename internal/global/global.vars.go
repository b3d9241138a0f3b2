// Package global giữ các biến dùng chung của ứng dụng: phiên kết nối MongoDB,
// cấu hình server, validator và registry collections.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"metro_waste/config"
	"metro_waste/internal/registry"
)

// CollectionNames chứa tên các collection MongoDB của hệ thống.
// Các field được gán giá trị trong init của server (initColNames).
type CollectionNames struct {
	WasteRequests     string // Yêu cầu thu gom rác của resident
	CollectionCenters string // Điểm tập kết / điều phối
	Vehicles          string // Xe thu gom (thuộc một center)
	Collectors        string // Nhân viên thu gom
	Schedules         string // Lịch thu gom (collector + center + vehicle + slot)
	Payments          string // Bản ghi thanh toán (collaborator bên ngoài)
}

var Validate *validator.Validate                  // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                 // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration    // Cấu hình của server
var MongoDB_ColNames CollectionNames              // Tên các collection

// RegistryCollections chứa các collections đã đăng ký theo tên
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
