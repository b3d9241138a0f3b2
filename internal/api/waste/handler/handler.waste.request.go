// Package wastehdl - Handler yêu cầu thu gom rác.
package wastehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "metro_waste/internal/api/base/handler"
	wastedto "metro_waste/internal/api/waste/dto"
	wastemodels "metro_waste/internal/api/waste/models"
	wastesvc "metro_waste/internal/api/waste/service"
	"metro_waste/internal/common"
)

// WasteRequestHandler xử lý CRUD yêu cầu thu gom.
type WasteRequestHandler struct {
	*basehdl.BaseHandler[wastemodels.WasteRequest, wastedto.WasteRequestCreateInput, wastedto.WasteRequestUpdateInput]
	RequestService *wastesvc.WasteRequestService
}

// NewWasteRequestHandler tạo WasteRequestHandler mới.
func NewWasteRequestHandler() (*WasteRequestHandler, error) {
	requestSvc, err := wastesvc.NewWasteRequestService()
	if err != nil {
		return nil, fmt.Errorf("tạo WasteRequestService: %w", err)
	}
	return &WasteRequestHandler{
		BaseHandler:    basehdl.NewBaseHandler[wastemodels.WasteRequest, wastedto.WasteRequestCreateInput, wastedto.WasteRequestUpdateInput](),
		RequestService: requestSvc,
	}, nil
}

// HandleCreateRequest xử lý POST /requests.
func (h *WasteRequestHandler) HandleCreateRequest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input wastedto.WasteRequestCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.RequestService.CreateRequest(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.WriteCreatedResponse(c, created, nil)
		return nil
	})
}

// HandleListByResident xử lý GET /requests/resident/:residentId.
func (h *WasteRequestHandler) HandleListByResident(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		residentID, err := parseObjectIDParam(c, "residentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		requests, err := h.RequestService.FindByResident(c.Context(), residentID)
		h.HandleResponse(c, requests, err)
		return nil
	})
}

// HandleGetProgress xử lý GET /requests/resident/:residentId/progress.
func (h *WasteRequestHandler) HandleGetProgress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		residentID, err := parseObjectIDParam(c, "residentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		progress, err := h.RequestService.GetProgress(c.Context(), residentID)
		h.HandleResponse(c, progress, err)
		return nil
	})
}

// HandleUpdateRequest xử lý PUT /requests/:id.
func (h *WasteRequestHandler) HandleUpdateRequest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input wastedto.WasteRequestUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.RequestService.UpdateRequest(c.Context(), id, &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDeleteRequest xử lý DELETE /requests/:id.
func (h *WasteRequestHandler) HandleDeleteRequest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.RequestService.DeleteRequest(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// parseObjectIDParam đọc và validate một ObjectID từ URL params.
func parseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	if raw == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Thiếu %s trong URL params", name),
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("%s '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", name, raw),
			common.StatusBadRequest,
			nil,
		)
	}
	id, _ := primitive.ObjectIDFromHex(raw)
	return id, nil
}
