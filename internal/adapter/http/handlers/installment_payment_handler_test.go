package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ucraft_estimates/internal/adapter/http/dto/request"
	"ucraft_estimates/internal/adapter/http/handlers/mocks"
	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/usecase"
	"ucraft_estimates/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(h *InstallmentPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/:estimate_id", h.PayInstallment)
	r.GET("/v1/payments/:estimate_id", h.ListPayments)
	return r
}

func TestInstallmentPaymentHandler_PayInstallment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		if w := serve(r, http.MethodPost, "/v1/payments/est-1?installment=contract", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		w := serve(r, http.MethodPost, "/v1/payments/est-1", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_INSTALLMENT" {
			t.Fatalf("expected 400 INVALID_INSTALLMENT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1?installment=contract", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		uc.EXPECT().PayInstallment(gomock.Any(), "est-1", entities.InstallmentContract, json.RawMessage("{}")).
			Return(entities.InstallmentPayment{ID: "p1", EstimateID: "est-1", Installment: entities.InstallmentContract, Status: entities.PaymentStatusApproved}, nil)

		if w := serve(r, http.MethodPost, "/v1/payments/est-1?installment=contract", "{"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		uc.EXPECT().PayInstallment(gomock.Any(), "est-1", entities.InstallmentMiddle, gomock.Any()).Return(entities.InstallmentPayment{}, usecase.ErrEstimateNotSent)

		w := serve(r, http.MethodPost, "/v1/payments/est-1", `{"installment":"middle","provider_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().PayInstallment(gomock.Any(), "est-1", entities.InstallmentBalance, json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.InstallmentPayment{ID: "pay-1", EstimateID: "est-1", Installment: entities.InstallmentBalance, Amount: 300000, Date: now, Status: entities.PaymentStatusApproved}, nil)

		w := serve(r, http.MethodPost, "/v1/payments/est-1", `{"installment":"balance","provider_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["payment_id"] != "pay-1" || body["amount"] != float64(300000) || body["label"] != "잔금" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInstallmentPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, &interfaces.StorageUnavailableError{Op: "load payments", Err: errors.New("x")})

		if w := serve(r, http.MethodGet, "/v1/payments/est-1", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("empty schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/payments/est-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		outstanding, _ := decodeBody(t, w)["outstanding"].([]any)
		if len(outstanding) != 3 {
			t.Fatalf("expected all installments outstanding, got %s", w.Body.String())
		}
	})

	t.Run("partially paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInstallmentPaymentUseCase(ctrl)
		r := newPaymentRouter(NewInstallmentPaymentHandler(uc))

		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.InstallmentPayment{
			{ID: "p1", Installment: entities.InstallmentContract, Status: entities.PaymentStatusApproved},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/payments/est-1", "")
		body := decodeBody(t, w)
		payments, _ := body["payments"].([]any)
		outstanding, _ := body["outstanding"].([]any)
		if len(payments) != 1 || len(outstanding) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapInstallmentPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{request.ErrMissingInstallment, http.StatusBadRequest},
		{request.ErrEmptyProviderPayload, http.StatusBadRequest},
		{usecase.ErrInvalidInstallment, http.StatusBadRequest},
		{usecase.ErrInvalidEstimateID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrEstimateNotFound, http.StatusNotFound},
		{usecase.ErrEstimateNotSent, http.StatusConflict},
		{usecase.ErrInstallmentAlreadyPaid, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapInstallmentPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if isPaymentGatewayMockEnabled() {
		t.Fatalf("expected disabled")
	}
	t.Setenv("MERCADOPAGO_MOCK", "on")
	if !isPaymentGatewayMockEnabled() {
		t.Fatalf("expected enabled")
	}
}
