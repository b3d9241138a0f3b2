// Package centerhdl - Handler collection center và allocation.
package centerhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "metro_waste/internal/api/base/handler"
	centerdto "metro_waste/internal/api/center/dto"
	centermodels "metro_waste/internal/api/center/models"
	centersvc "metro_waste/internal/api/center/service"
)

// CenterHandler xử lý CRUD center và chạy batch allocation.
type CenterHandler struct {
	*basehdl.BaseHandler[centermodels.CollectionCenter, centerdto.CenterCreateInput, centerdto.CenterCreateInput]
	CenterService  *centersvc.CenterService
	PlannerService *centersvc.PlannerService
}

// NewCenterHandler tạo CenterHandler mới.
func NewCenterHandler() (*CenterHandler, error) {
	centerSvc, err := centersvc.NewCenterService()
	if err != nil {
		return nil, fmt.Errorf("tạo CenterService: %w", err)
	}
	plannerSvc, err := centersvc.NewPlannerService()
	if err != nil {
		return nil, fmt.Errorf("tạo PlannerService: %w", err)
	}
	return &CenterHandler{
		BaseHandler:    basehdl.NewBaseHandler[centermodels.CollectionCenter, centerdto.CenterCreateInput, centerdto.CenterCreateInput](),
		CenterService:  centerSvc,
		PlannerService: plannerSvc,
	}, nil
}

// HandleCreateCenter xử lý POST /centers.
func (h *CenterHandler) HandleCreateCenter(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input centerdto.CenterCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.CenterService.CreateCenter(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.WriteCreatedResponse(c, created, nil)
		return nil
	})
}

// HandleListCenters xử lý GET /centers.
func (h *CenterHandler) HandleListCenters(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		centers, err := h.CenterService.ListCenters(c.Context())
		h.HandleResponse(c, centers, err)
		return nil
	})
}

// HandleAllocateResources xử lý POST /centers/allocate-resources.
// Chạy một lượt Capacity Planner trên toàn bộ center; kết quả là danh sách
// per-center, center lỗi mang field error riêng (partial-success, không phải
// một exception chung).
func (h *CenterHandler) HandleAllocateResources(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		results, err := h.PlannerService.AllocateResources(c.Context())
		h.HandleResponse(c, results, err)
		return nil
	})
}
