// Package router đăng ký các route thuộc domain schedule.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "metro_waste/internal/api/router"
	schedhdl "metro_waste/internal/api/schedule/handler"
)

// Register đăng ký tất cả route schedule lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	scheduleHandler, err := schedhdl.NewScheduleHandler()
	if err != nil {
		return fmt.Errorf("tạo ScheduleHandler: %w", err)
	}

	// POST /schedules — tạo lịch, 409 khi double-booking
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "POST", "/", nil, scheduleHandler.HandleCreateSchedule)
	// GET /schedules
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "GET", "/", nil, scheduleHandler.HandleFindAll)
	// GET /schedules/collector/:collectorId — 404 khi collector chưa có lịch
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "GET", "/collector/:collectorId", nil, scheduleHandler.HandleFindByCollector)
	// GET /schedules/center/:centerId — mảng rỗng khi center chưa có lịch
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "GET", "/center/:centerId", nil, scheduleHandler.HandleFindByCenter)
	// PATCH /schedules/:scheduleId/accept
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "PATCH", "/:scheduleId/accept", nil, scheduleHandler.HandleAcceptSchedule)
	// PATCH /schedules/:scheduleId/cancel
	apirouter.RegisterRouteWithMiddleware(v1, "/schedules", "PATCH", "/:scheduleId/cancel", nil, scheduleHandler.HandleCancelSchedule)

	return nil
}
