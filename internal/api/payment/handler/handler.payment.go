// Package paymenthdl - Handler thanh toán.
package paymenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "metro_waste/internal/api/base/handler"
	paymentdto "metro_waste/internal/api/payment/dto"
	paymentmodels "metro_waste/internal/api/payment/models"
	paymentsvc "metro_waste/internal/api/payment/service"
	"metro_waste/internal/common"
)

// PaymentHandler xử lý các luồng thanh toán.
type PaymentHandler struct {
	*basehdl.BaseHandler[paymentmodels.Payment, paymentdto.ProcessPaymentInput, paymentdto.ApprovePaymentInput]
	PaymentService *paymentsvc.PaymentService
}

// NewPaymentHandler tạo PaymentHandler mới với gateway được inject.
func NewPaymentHandler(gateway paymentsvc.Gateway) (*PaymentHandler, error) {
	paymentSvc, err := paymentsvc.NewPaymentService(gateway)
	if err != nil {
		return nil, fmt.Errorf("tạo PaymentService: %w", err)
	}
	return &PaymentHandler{
		BaseHandler:    basehdl.NewBaseHandler[paymentmodels.Payment, paymentdto.ProcessPaymentInput, paymentdto.ApprovePaymentInput](),
		PaymentService: paymentSvc,
	}, nil
}

// HandleCheckout xử lý POST /payments/checkout — tạo phiên thanh toán trên gateway.
func (h *PaymentHandler) HandleCheckout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input paymentdto.CheckoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		session, err := h.PaymentService.CreateCheckoutSession(c.Context(), &input)
		h.HandleResponse(c, session, err)
		return nil
	})
}

// HandleProcessPayment xử lý POST /payments/process.
func (h *PaymentHandler) HandleProcessPayment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input paymentdto.ProcessPaymentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.PaymentService.ProcessPayment(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.WriteCreatedResponse(c, created, nil)
		return nil
	})
}

// HandleApprovePayment xử lý POST /payments/approve.
func (h *PaymentHandler) HandleApprovePayment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input paymentdto.ApprovePaymentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.PaymentService.ApprovePayment(c.Context(), &input)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleListByResident xử lý GET /payments/resident/:residentId.
func (h *PaymentHandler) HandleListByResident(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		raw := c.Params("residentId")
		if raw == "" || !primitive.IsValidObjectID(raw) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("residentId '%s' không đúng định dạng MongoDB ObjectID", raw),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		residentID, _ := primitive.ObjectIDFromHex(raw)

		payments, err := h.PaymentService.ListByResident(c.Context(), residentID)
		h.HandleResponse(c, payments, err)
		return nil
	})
}
