// Package schedhdl - Handler lịch thu gom.
package schedhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "metro_waste/internal/api/base/handler"
	scheddto "metro_waste/internal/api/schedule/dto"
	schedmodels "metro_waste/internal/api/schedule/models"
	schedsvc "metro_waste/internal/api/schedule/service"
	"metro_waste/internal/common"
)

// ScheduleHandler xử lý tạo lịch, chuyển trạng thái và các query view.
type ScheduleHandler struct {
	*basehdl.BaseHandler[schedmodels.Schedule, scheddto.ScheduleCreateInput, scheddto.ScheduleCreateInput]
	ScheduleService *schedsvc.ScheduleService
}

// NewScheduleHandler tạo ScheduleHandler mới.
func NewScheduleHandler() (*ScheduleHandler, error) {
	scheduleSvc, err := schedsvc.NewScheduleService()
	if err != nil {
		return nil, fmt.Errorf("tạo ScheduleService: %w", err)
	}
	return &ScheduleHandler{
		BaseHandler:     basehdl.NewBaseHandler[schedmodels.Schedule, scheddto.ScheduleCreateInput, scheddto.ScheduleCreateInput](),
		ScheduleService: scheduleSvc,
	}, nil
}

// HandleCreateSchedule xử lý POST /schedules.
// Double-booking trả 409, request không còn pending trả 400.
func (h *ScheduleHandler) HandleCreateSchedule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input scheddto.ScheduleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.ScheduleService.CreateSchedule(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.WriteCreatedResponse(c, created, nil)
		return nil
	})
}

// HandleFindAll xử lý GET /schedules.
func (h *ScheduleHandler) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		schedules, err := h.ScheduleService.FindAll(c.Context())
		h.HandleResponse(c, schedules, err)
		return nil
	})
}

// HandleFindByCollector xử lý GET /schedules/collector/:collectorId.
// Collector chưa có lịch nào → 404 (hành vi của hệ thống cũ).
func (h *ScheduleHandler) HandleFindByCollector(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		collectorID, err := h.paramID(c, "collectorId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		schedules, err := h.ScheduleService.FindByCollector(c.Context(), collectorID)
		h.HandleResponse(c, schedules, err)
		return nil
	})
}

// HandleFindByCenter xử lý GET /schedules/center/:centerId.
// Center chưa có lịch nào → 200 với mảng rỗng.
func (h *ScheduleHandler) HandleFindByCenter(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		centerID, err := h.paramID(c, "centerId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		schedules, err := h.ScheduleService.FindByCenter(c.Context(), centerID)
		h.HandleResponse(c, schedules, err)
		return nil
	})
}

// HandleAcceptSchedule xử lý PATCH /schedules/:scheduleId/accept.
func (h *ScheduleHandler) HandleAcceptSchedule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scheduleID, err := h.paramID(c, "scheduleId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.ScheduleService.AcceptSchedule(c.Context(), scheduleID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleCancelSchedule xử lý PATCH /schedules/:scheduleId/cancel.
func (h *ScheduleHandler) HandleCancelSchedule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scheduleID, err := h.paramID(c, "scheduleId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.ScheduleService.CancelSchedule(c.Context(), scheduleID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

func (h *ScheduleHandler) paramID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	if raw == "" || !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("%s '%s' không đúng định dạng MongoDB ObjectID", name, raw),
			common.StatusBadRequest,
			nil,
		)
	}
	id, _ := primitive.ObjectIDFromHex(raw)
	return id, nil
}
