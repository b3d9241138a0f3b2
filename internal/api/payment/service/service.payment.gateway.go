// Package paymentsvc - Gateway client: phiên thanh toán được tạo trên một
// gateway HTTP bên ngoài. Client được construct tường minh lúc startup và
// inject vào PaymentService — không dùng singleton lazy toàn cục.
package paymentsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	paymentdto "metro_waste/internal/api/payment/dto"
	"metro_waste/internal/logger"
)

// CheckoutParams tham số tạo phiên thanh toán trên gateway.
type CheckoutParams struct {
	ResidentId     string  `json:"residentId"`
	WasteRequestId string  `json:"wasteRequestId"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
}

// Gateway là collaborator thanh toán bên ngoài. Core không kiểm soát và không
// validate trạng thái gateway trả về — chỉ ghi nhận.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*paymentdto.CheckoutSession, error)
}

// HTTPGateway gọi gateway thanh toán qua HTTP.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway tạo HTTPGateway mới trỏ tới baseURL.
func NewHTTPGateway(baseURL string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateCheckoutSession tạo phiên checkout trên gateway.
func (g *HTTPGateway) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*paymentdto.CheckoutSession, error) {
	log := logger.GetAppLogger()

	jsonData, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	url := g.baseURL + "/v1/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"wasteRequestId": params.WasteRequestId,
			"url":            url,
		}).Error("Lỗi khi gọi payment gateway")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"wasteRequestId": params.WasteRequestId,
			"statusCode":     resp.StatusCode,
			"response":       string(bodyBytes),
		}).Error("Payment gateway trả về lỗi")
		return nil, fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var session paymentdto.CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}
