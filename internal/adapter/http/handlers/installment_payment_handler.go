package handlers

//go:generate mockgen -destination=mocks/mock_installment_payment_usecase.go -package=mocks ucraft_estimates/internal/usecase IInstallmentPaymentUseCase

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"ucraft_estimates/internal/adapter/http/dto/request"
	"ucraft_estimates/internal/adapter/http/dto/response"
	"ucraft_estimates/internal/usecase"
	"ucraft_estimates/internal/usecase/interfaces"
	"ucraft_estimates/pkg"

	"github.com/gin-gonic/gin"
)

// InstallmentPaymentHandler handles HTTP requests for installment payments.
type InstallmentPaymentHandler struct {
	usecase usecase.IInstallmentPaymentUseCase
}

func NewInstallmentPaymentHandler(uc usecase.IInstallmentPaymentUseCase) *InstallmentPaymentHandler {
	return &InstallmentPaymentHandler{usecase: uc}
}

// PayInstallment godoc
// @Summary      Charge one installment of a sent estimate
// @Description  The amount is taken from the estimate price (30/40/30), never from the body.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                             true   "Estimate ID"
// @Param        installment  query     string                             false  "contract, middle or balance, when not in the body"
// @Param        request      body      request.InstallmentPaymentRequest  false  "Installment and provider payload"
// @Success      200          {object}  response.InstallmentPaymentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /payments/{estimate_id} [post]
func (h *InstallmentPaymentHandler) PayInstallment(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[payment][handler] pay start estimate_id=%s", estimateID)

	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	req, err := request.ParseInstallmentPaymentRequest(raw, c.Query("installment"))
	if err != nil {
		if errors.Is(err, request.ErrInvalidJSONBody) && isPaymentGatewayMockEnabled() {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload estimate_id=%s", estimateID)
			req, err = request.ParseInstallmentPaymentRequest(nil, c.Query("installment"))
		}
	}
	if err != nil {
		log.Printf("[payment][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
		appErr := mapInstallmentPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.PayInstallment(c.Request.Context(), estimateID, req.Installment, json.RawMessage(req.ProviderPayload))
	if err != nil {
		log.Printf("[payment][handler] pay failed estimate_id=%s installment=%s err=%v", estimateID, req.Installment, err)
		appErr := mapInstallmentPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay success estimate_id=%s payment_id=%s status=%s", estimateID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromInstallmentPayment(created))
}

// ListPayments godoc
// @Summary      List the payments of an estimate
// @Tags         payments
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.PaymentScheduleResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /payments/{estimate_id} [get]
func (h *InstallmentPaymentHandler) ListPayments(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[payment][handler] list failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapInstallmentPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallmentPayments(strings.TrimSpace(estimateID), payments))
}

func mapInstallmentPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrMissingInstallment), errors.Is(err, request.ErrUnknownInstallmentKey), errors.Is(err, usecase.ErrInvalidInstallment):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLMENT", "Installment must be contract, middle or balance", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidJSONBody), errors.Is(err, request.ErrEmptyProviderPayload),
		errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotSent):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_SENT", "Only sent estimates can be paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentAlreadyPaid):
		return pkg.NewDomainErrorSimple("INSTALLMENT_ALREADY_PAID", "Installment already paid", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
