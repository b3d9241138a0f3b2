// Package router đăng ký các route thuộc domain waste: yêu cầu thu gom, báo cáo cao điểm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "metro_waste/internal/api/router"
	wastehdl "metro_waste/internal/api/waste/handler"
)

// Register đăng ký tất cả route waste lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	requestHandler, err := wastehdl.NewWasteRequestHandler()
	if err != nil {
		return fmt.Errorf("tạo WasteRequestHandler: %w", err)
	}
	reportHandler, err := wastehdl.NewPeakReportHandler()
	if err != nil {
		return fmt.Errorf("tạo PeakReportHandler: %w", err)
	}

	// POST /requests — resident tạo yêu cầu thu gom
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "POST", "/", nil, requestHandler.HandleCreateRequest)
	// GET /requests/resident/:residentId — danh sách yêu cầu của resident, mới nhất trước
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "GET", "/resident/:residentId", nil, requestHandler.HandleListByResident)
	// GET /requests/resident/:residentId/progress — tiến độ, 404 khi chưa có yêu cầu nào
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "GET", "/resident/:residentId/progress", nil, requestHandler.HandleGetProgress)
	// PUT /requests/:id — cập nhật một phần
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "PUT", "/:id", nil, requestHandler.HandleUpdateRequest)
	// DELETE /requests/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "DELETE", "/:id", nil, requestHandler.HandleDeleteRequest)

	// GET /reports/peak-periods — báo cáo cao điểm theo slot
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/peak-periods", nil, reportHandler.HandlePeakPeriods)

	return nil
}
