// Package paymentsvc - Service thanh toán: ghi nhận payment hoàn tất và flip
// các waste request liên quan sang "payment complete".
package paymentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "metro_waste/internal/api/base/service"
	paymentdto "metro_waste/internal/api/payment/dto"
	paymentmodels "metro_waste/internal/api/payment/models"
	wastemodels "metro_waste/internal/api/waste/models"
	wastesvc "metro_waste/internal/api/waste/service"
	"metro_waste/internal/common"
	"metro_waste/internal/global"
	"metro_waste/internal/utility"
)

// PricePerType là bảng giá theo loại rác, dùng để tính amount khi checkout.
// Loại không có trong bảng → 0.
var PricePerType = map[string]float64{
	"Glass":       15,
	"Wood":        10,
	"Hazardous":   60,
	"Paper":       10,
	"Metal":       20,
	"Plastic":     30,
	"Organic":     30,
	"Electronics": 50,
}

// CheckoutAmount tính số tiền cho một request: đơn giá theo loại nhân quantity
// (quantity hỏng hoặc 0 → tính 1 đơn vị, khớp hành vi hệ thống cũ).
func CheckoutAmount(wasteType string, quantity interface{}) float64 {
	unit := PricePerType[wasteType]
	parsed := utility.SafeParseQuantity(quantity)
	qty := parsed.Value
	if qty == 0 {
		qty = 1
	}
	return unit * qty
}

// PaymentService ghi nhận payment và điều phối gateway bên ngoài.
type PaymentService struct {
	*basesvc.BaseServiceMongoImpl[paymentmodels.Payment]
	requestSvc *wastesvc.WasteRequestService
	gateway    Gateway
	currency   string
}

// NewPaymentService tạo PaymentService mới với gateway được inject.
func NewPaymentService(gateway Gateway) (*PaymentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Payments)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Payments, common.ErrNotFound)
	}
	requestSvc, err := wastesvc.NewWasteRequestService()
	if err != nil {
		return nil, fmt.Errorf("tạo WasteRequestService: %w", err)
	}

	currency := "usd"
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.PaymentCurrency != "" {
		currency = global.MongoDB_ServerConfig.PaymentCurrency
	}

	return &PaymentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[paymentmodels.Payment](coll),
		requestSvc:           requestSvc,
		gateway:              gateway,
		currency:             currency,
	}, nil
}

// CreateCheckoutSession tạo phiên thanh toán trên gateway cho một request.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, input *paymentdto.CheckoutInput) (*paymentdto.CheckoutSession, error) {
	requestID := utility.String2ObjectID(input.WasteRequestId)
	if requestID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationInput, "wasteRequestId không hợp lệ", common.StatusBadRequest, nil)
	}

	request, err := s.requestSvc.FindOneById(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return s.gateway.CreateCheckoutSession(ctx, CheckoutParams{
		ResidentId:     input.ResidentId,
		WasteRequestId: input.WasteRequestId,
		Description:    fmt.Sprintf("Waste collection - %s", request.WasteType),
		Amount:         CheckoutAmount(request.WasteType, request.Quantity),
		Currency:       s.currency,
	})
}

// ProcessPayment ghi nhận một payment đã hoàn tất (luồng mock/legacy) và flip
// các request liên quan sang "payment complete".
func (s *PaymentService) ProcessPayment(ctx context.Context, input *paymentdto.ProcessPaymentInput) (*paymentmodels.Payment, error) {
	residentID := utility.String2ObjectID(input.ResidentId)
	if residentID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationInput, "residentId không hợp lệ", common.StatusBadRequest, nil)
	}
	requestIDs, ok := utility.StringArray2ObjectIDArray(input.WasteRequestIds)
	if !ok || len(requestIDs) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "wasteRequestIds phải là danh sách ObjectID hợp lệ", common.StatusBadRequest, nil)
	}

	doc := paymentmodels.Payment{
		ResidentId:    residentID,
		Amount:        input.Amount,
		Currency:      s.currency,
		WasteRequests: requestIDs,
		Status:        paymentmodels.PaymentStatusCompleted,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	if _, err := s.requestSvc.UpdateStatusMany(ctx, requestIDs, wastemodels.RequestStatusPaymentComplete); err != nil {
		return nil, err
	}
	return &created, nil
}

// ApprovePayment luồng admin/collector đánh dấu một request đã thanh toán:
// tạo bản ghi payment từ bảng giá rồi flip request.
func (s *PaymentService) ApprovePayment(ctx context.Context, input *paymentdto.ApprovePaymentInput) (*paymentmodels.Payment, error) {
	requestID := utility.String2ObjectID(input.WasteRequestId)
	if requestID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationInput, "wasteRequestId không hợp lệ", common.StatusBadRequest, nil)
	}

	request, err := s.requestSvc.FindOneById(ctx, requestID)
	if err != nil {
		return nil, err
	}

	doc := paymentmodels.Payment{
		ResidentId:    request.ResidentId,
		Amount:        CheckoutAmount(request.WasteType, request.Quantity),
		Currency:      s.currency,
		WasteRequests: []primitive.ObjectID{requestID},
		Status:        paymentmodels.PaymentStatusCompleted,
		ApproverId:    utility.String2ObjectID(input.ApproverId),
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	if _, err := s.requestSvc.UpdateStatusMany(ctx, []primitive.ObjectID{requestID}, wastemodels.RequestStatusPaymentComplete); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByResident trả về các payment của một resident, mới nhất trước.
func (s *PaymentService) ListByResident(ctx context.Context, residentID primitive.ObjectID) ([]paymentmodels.Payment, error) {
	filter := bson.M{"residentId": residentID}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}
