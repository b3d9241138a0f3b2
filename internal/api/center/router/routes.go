// Package router đăng ký các route thuộc domain center: CRUD và allocation.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	centerhdl "metro_waste/internal/api/center/handler"
	apirouter "metro_waste/internal/api/router"
)

// Register đăng ký tất cả route center lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	centerHandler, err := centerhdl.NewCenterHandler()
	if err != nil {
		return fmt.Errorf("tạo CenterHandler: %w", err)
	}

	// POST /centers — admin tạo center với trần tài nguyên tùy chọn
	apirouter.RegisterRouteWithMiddleware(v1, "/centers", "POST", "/", nil, centerHandler.HandleCreateCenter)
	// GET /centers
	apirouter.RegisterRouteWithMiddleware(v1, "/centers", "GET", "/", nil, centerHandler.HandleListCenters)
	// POST /centers/allocate-resources — chạy batch Capacity Planner
	apirouter.RegisterRouteWithMiddleware(v1, "/centers", "POST", "/allocate-resources", nil, centerHandler.HandleAllocateResources)

	return nil
}
