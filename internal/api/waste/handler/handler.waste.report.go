// Package wastehdl - Handler báo cáo cao điểm (peak periods).
package wastehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "metro_waste/internal/api/base/handler"
	wastesvc "metro_waste/internal/api/waste/service"
)

// PeakReportHandler xử lý báo cáo demand theo slot.
type PeakReportHandler struct {
	DemandService *wastesvc.DemandService
}

// NewPeakReportHandler tạo PeakReportHandler mới.
func NewPeakReportHandler() (*PeakReportHandler, error) {
	demandSvc, err := wastesvc.NewDemandService()
	if err != nil {
		return nil, fmt.Errorf("tạo DemandService: %w", err)
	}
	return &PeakReportHandler{DemandService: demandSvc}, nil
}

// HandlePeakPeriods xử lý GET /reports/peak-periods.
// Trả về danh sách slot (date, time, center) sắp xếp giảm dần theo tổng quantity;
// không có dữ liệu → mảng rỗng, không phải lỗi.
func (h *PeakReportHandler) HandlePeakPeriods(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		periods, err := h.DemandService.PeakPeriods(c.Context())
		basehdl.WriteResponse(c, periods, err)
		return nil
	})
}
