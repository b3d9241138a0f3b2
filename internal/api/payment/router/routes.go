// Package router đăng ký các route thuộc domain payment.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	paymenthdl "metro_waste/internal/api/payment/handler"
	paymentsvc "metro_waste/internal/api/payment/service"
	apirouter "metro_waste/internal/api/router"
)

// NewRegister trả về hàm đăng ký route payment với gateway được inject từ
// startup (tránh singleton toàn cục cho client gateway).
func NewRegister(gateway paymentsvc.Gateway) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		paymentHandler, err := paymenthdl.NewPaymentHandler(gateway)
		if err != nil {
			return fmt.Errorf("tạo PaymentHandler: %w", err)
		}

		// POST /payments/checkout — tạo phiên thanh toán trên gateway
		apirouter.RegisterRouteWithMiddleware(v1, "/payments", "POST", "/checkout", nil, paymentHandler.HandleCheckout)
		// POST /payments/process — ghi nhận payment hoàn tất (luồng mock/legacy)
		apirouter.RegisterRouteWithMiddleware(v1, "/payments", "POST", "/process", nil, paymentHandler.HandleProcessPayment)
		// POST /payments/approve — admin/collector đánh dấu đã thanh toán
		apirouter.RegisterRouteWithMiddleware(v1, "/payments", "POST", "/approve", nil, paymentHandler.HandleApprovePayment)
		// GET /payments/resident/:residentId
		apirouter.RegisterRouteWithMiddleware(v1, "/payments", "GET", "/resident/:residentId", nil, paymentHandler.HandleListByResident)

		return nil
	}
}
