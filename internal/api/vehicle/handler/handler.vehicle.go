// Package vehiclehdl - Handler xe thu gom.
package vehiclehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "metro_waste/internal/api/base/handler"
	vehicledto "metro_waste/internal/api/vehicle/dto"
	vehiclemodels "metro_waste/internal/api/vehicle/models"
	vehiclesvc "metro_waste/internal/api/vehicle/service"
	"metro_waste/internal/common"
)

// VehicleHandler xử lý CRUD vehicle.
type VehicleHandler struct {
	*basehdl.BaseHandler[vehiclemodels.Vehicle, vehicledto.VehicleCreateInput, vehicledto.VehicleUpdateInput]
	VehicleService *vehiclesvc.VehicleService
}

// NewVehicleHandler tạo VehicleHandler mới.
func NewVehicleHandler() (*VehicleHandler, error) {
	vehicleSvc, err := vehiclesvc.NewVehicleService()
	if err != nil {
		return nil, fmt.Errorf("tạo VehicleService: %w", err)
	}
	return &VehicleHandler{
		BaseHandler:    basehdl.NewBaseHandler[vehiclemodels.Vehicle, vehicledto.VehicleCreateInput, vehicledto.VehicleUpdateInput](),
		VehicleService: vehicleSvc,
	}, nil
}

// HandleCreateVehicle xử lý POST /vehicles.
func (h *VehicleHandler) HandleCreateVehicle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input vehicledto.VehicleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.VehicleService.CreateVehicle(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.WriteCreatedResponse(c, created, nil)
		return nil
	})
}

// HandleListVehicles xử lý GET /vehicles.
func (h *VehicleHandler) HandleListVehicles(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vehicles, err := h.VehicleService.ListVehicles(c.Context())
		h.HandleResponse(c, vehicles, err)
		return nil
	})
}

// HandleGetVehicle xử lý GET /vehicles/:id.
func (h *VehicleHandler) HandleGetVehicle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.paramID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vehicle, err := h.VehicleService.FindOneById(c.Context(), id)
		h.HandleResponse(c, vehicle, err)
		return nil
	})
}

// HandleListByCenter xử lý GET /vehicles/center/:centerId.
// Center chưa có xe nào → mảng rỗng, không phải lỗi.
func (h *VehicleHandler) HandleListByCenter(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		centerID, err := h.paramID(c, "centerId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vehicles, err := h.VehicleService.FindByCenter(c.Context(), centerID)
		h.HandleResponse(c, vehicles, err)
		return nil
	})
}

// HandleUpdateVehicle xử lý PUT /vehicles/:id.
func (h *VehicleHandler) HandleUpdateVehicle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.paramID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input vehicledto.VehicleUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.VehicleService.UpdateVehicle(c.Context(), id, &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDeleteVehicle xử lý DELETE /vehicles/:id.
func (h *VehicleHandler) HandleDeleteVehicle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.paramID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.VehicleService.DeleteVehicle(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

func (h *VehicleHandler) paramID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
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
