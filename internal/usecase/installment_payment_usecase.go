package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/domain/pricing"
	"ucraft_estimates/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInstallment             = errors.New("invalid installment")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrEstimateNotSent                = errors.New("estimate not sent")
	ErrInstallmentAlreadyPaid         = errors.New("installment already paid")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IInstallmentPaymentUseCase charges the 30/40/30 installments of a sent estimate.
//
// Requested behavior:
//   - only Sent estimates can be paid, one charge per installment
//   - the amount always comes from the estimate price, never from the caller
//   - once every installment is approved the estimate is completed
type IInstallmentPaymentUseCase interface {
	PayInstallment(ctx context.Context, estimateID string, kind entities.Installment, providerPayload json.RawMessage) (entities.InstallmentPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.InstallmentPayment, error)
}

type InstallmentPaymentUseCase struct {
	repo      interfaces.IInstallmentPaymentRepository
	estimates IEstimateUseCase
	gateway   interfaces.IPaymentGateway
	now       func() time.Time

	mu sync.Mutex
}

var _ IInstallmentPaymentUseCase = (*InstallmentPaymentUseCase)(nil)

func NewInstallmentPaymentUseCase(repo interfaces.IInstallmentPaymentRepository, estimates IEstimateUseCase, gateway interfaces.IPaymentGateway) *InstallmentPaymentUseCase {
	return &InstallmentPaymentUseCase{
		repo:      repo,
		estimates: estimates,
		gateway:   gateway,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *InstallmentPaymentUseCase) PayInstallment(ctx context.Context, estimateID string, kind entities.Installment, providerPayload json.RawMessage) (entities.InstallmentPayment, error) {
	log.Printf("[payment][usecase] pay-installment start raw_estimate_id=%q installment=%s payload_len=%d", estimateID, kind, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.InstallmentPayment{}, ErrInvalidEstimateID
	}
	if !kind.Valid() {
		return entities.InstallmentPayment{}, ErrInvalidInstallment
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload estimate_id=%s", estimateID)
			return entities.InstallmentPayment{}, ErrInvalidPaymentPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.InstallmentPayment{}, errors.New("payment gateway not configured")
	}
	if u.estimates == nil || u.repo == nil {
		return entities.InstallmentPayment{}, errors.New("payment dependencies not configured")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.InstallmentPayment{}, err
	}
	if est.Status != entities.EstimateStatusSent {
		log.Printf("[payment][usecase] estimate not sent estimate_id=%s status=%s", estimateID, est.Status)
		return entities.InstallmentPayment{}, ErrEstimateNotSent
	}

	recorded, err := u.repo.LoadPayments(ctx, estimateID)
	if err != nil {
		return entities.InstallmentPayment{}, err
	}
	if isInstallmentPaid(recorded, kind) {
		return entities.InstallmentPayment{}, ErrInstallmentAlreadyPaid
	}

	amount := pricing.ForPrice(est.Price).Installments.Amount(kind)
	log.Printf("[payment][usecase] estimate loaded estimate_id=%s price=%d installment=%s amount=%d", estimateID, est.Price, kind, amount)

	payload, err := enrichPayload(providerPayload, estimateID, kind, amount, mockMode)
	if err != nil {
		return entities.InstallmentPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err = classifyGatewayError(err); err != nil {
		log.Printf("[payment][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
		return entities.InstallmentPayment{}, err
	}

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}
	if strings.TrimSpace(providerID) == "" {
		providerID = uuid.NewString()
	}

	p := entities.InstallmentPayment{
		ID:                 providerID,
		EstimateID:         estimateID,
		Installment:        kind,
		Amount:             amount,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	recorded = append(recorded, p)
	if err := u.repo.SavePayments(ctx, estimateID, recorded); err != nil {
		log.Printf("[payment][usecase] payment save failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.InstallmentPayment{}, err
	}
	log.Printf("[payment][usecase] pay-installment success estimate_id=%s payment_id=%s status=%s", estimateID, p.ID, p.Status)

	if allInstallmentsPaid(recorded) {
		if _, err := u.estimates.Complete(ctx, estimateID); err != nil {
			log.Printf("[payment][usecase] estimate completion failed estimate_id=%s err=%v", estimateID, err)
		}
	}
	return p, nil
}

func (u *InstallmentPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.InstallmentPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	return u.repo.LoadPayments(ctx, estimateID)
}

func isInstallmentPaid(payments []entities.InstallmentPayment, kind entities.Installment) bool {
	for _, p := range payments {
		if p.Installment == kind && p.Status == entities.PaymentStatusApproved {
			return true
		}
	}
	return false
}

func allInstallmentsPaid(payments []entities.InstallmentPayment) bool {
	for _, kind := range entities.Installments {
		if !isInstallmentPaid(payments, kind) {
			return false
		}
	}
	return true
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

// enrichPayload links the provider request to the estimate and forces the
// installment amount. Non-object payloads are passed through untouched.
func enrichPayload(raw json.RawMessage, estimateID string, kind entities.Installment, amount int64, mockMode bool) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(raw, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] payload not an object estimate_id=%s", estimateID)
		return raw, nil
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id estimate_id=%s", estimateID)
			return nil, ErrInvalidPaymentPayload
		}
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer estimate_id=%s", estimateID)
			return nil, ErrInvalidPaymentPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = estimateID + ":" + string(kind)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Estimate %s %s", estimateID, kind.Label())
	}
	reqMap["transaction_amount"] = amount

	b, err := json.Marshal(reqMap)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// sandbox accepts payer.id or payer.email; email is filled only when both are missing
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}

	userID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
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

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
