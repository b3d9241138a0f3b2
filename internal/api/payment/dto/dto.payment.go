// Package dto - Input/Output cho domain payment.
package dto

// ProcessPaymentInput luồng thanh toán mock/legacy: ghi nhận payment đã hoàn
// tất và flip các request liên quan.
type ProcessPaymentInput struct {
	ResidentId      string   `json:"residentId" validate:"required"`
	Amount          float64  `json:"amount" validate:"min=0"`
	WasteRequestIds []string `json:"wasteRequestIds" validate:"required,min=1"`
}

// ApprovePaymentInput luồng admin/collector đánh dấu một request đã thanh toán.
type ApprovePaymentInput struct {
	WasteRequestId string `json:"wasteRequestId" validate:"required"`
	ApproverId     string `json:"approverId"`
}

// CheckoutInput tạo phiên thanh toán trên gateway cho một request.
type CheckoutInput struct {
	ResidentId     string `json:"residentId" validate:"required"`
	WasteRequestId string `json:"wasteRequestId" validate:"required"`
}

// CheckoutSession phiên thanh toán do gateway trả về.
type CheckoutSession struct {
	Id  string `json:"id"`
	Url string `json:"url"`
}
