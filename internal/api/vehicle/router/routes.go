// Package router đăng ký các route thuộc domain vehicle.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "metro_waste/internal/api/router"
	vehiclehdl "metro_waste/internal/api/vehicle/handler"
)

// Register đăng ký tất cả route vehicle lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	vehicleHandler, err := vehiclehdl.NewVehicleHandler()
	if err != nil {
		return fmt.Errorf("tạo VehicleHandler: %w", err)
	}

	// POST /vehicles
	apirouter.RegisterRouteWithMiddleware(v1, "/vehicles", "POST", "/", nil, vehicleHandler.HandleCreateVehicle)
	// GET /vehicles
	apirouter.RegisterRouteWithMiddleware(v1, "/vehicles", "GET", "/", nil, vehicleHandler.HandleListVehicles)
	// GET /vehicles/center/:centerId — luôn 200 với mảng, kể cả rỗng
	apirouter.RegisterRouteWithMiddleware(v1, "/vehicles", "GET", "/center/:centerId", nil, vehicleHandler.HandleListByCenter)
	// GET /vehicles/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/vehicles", "GET", "/:id", nil, vehicleHandler.HandleGetVehicle)
	// PUT /vehicles/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/vehicles", "PUT", "/:id", nil, vehicleHandler.HandleUpdateVehicle)
	// DELETE /vehicles/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/vehicles", "DELETE", "/:id", nil, vehicleHandler.HandleDeleteVehicle)

	return nil
}
