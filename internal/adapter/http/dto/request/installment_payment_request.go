package request

import (
	"encoding/json"
	"errors"
	"strings"

	"ucraft_estimates/internal/domain/entities"
)

var (
	ErrInvalidJSONBody       = errors.New("request body is not valid json")
	ErrEmptyProviderPayload  = errors.New("provider_payload cannot be empty")
	ErrMissingInstallment    = errors.New("installment is required")
	ErrUnknownInstallmentKey = errors.New("unknown installment")
)

// InstallmentPaymentRequest is the body of a payment call.
//
// `provider_payload` (or the older `mp_payload`) is passed to the payment
// provider as-is. A body without either key is itself the provider payload.
type InstallmentPaymentRequest struct {
	Installment     entities.Installment `json:"installment" swaggertype:"string" enums:"contract,middle,balance"`
	ProviderPayload json.RawMessage      `json:"provider_payload" swaggertype:"object"`
}

// ParseInstallmentPaymentRequest reads a raw body. fallbackInstallment is used
// when the body does not name the installment, e.g. from a query parameter.
func ParseInstallmentPaymentRequest(raw []byte, fallbackInstallment string) (InstallmentPaymentRequest, error) {
	var req InstallmentPaymentRequest
	payload, installment, err := splitPaymentBody(raw)
	if err != nil {
		return req, err
	}
	if installment == "" {
		installment = fallbackInstallment
	}
	installment = strings.ToLower(strings.TrimSpace(installment))
	if installment == "" {
		return req, ErrMissingInstallment
	}
	req.Installment = entities.Installment(installment)
	if !req.Installment.Valid() {
		return req, ErrUnknownInstallmentKey
	}
	req.ProviderPayload = payload
	return req, nil
}

func splitPaymentBody(raw []byte) (json.RawMessage, string, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), "", nil
	}
	if !json.Valid(raw) {
		return nil, "", ErrInvalidJSONBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return json.RawMessage(raw), "", nil
	}

	var installment string
	if v, ok := envelope["installment"]; ok {
		if err := json.Unmarshal(v, &installment); err != nil {
			return nil, "", ErrUnknownInstallmentKey
		}
	}
	for _, key := range []string{"provider_payload", "mp_payload"} {
		wrapped, ok := envelope[key]
		if !ok {
			continue
		}
		if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
			return nil, "", ErrEmptyProviderPayload
		}
		return wrapped, installment, nil
	}
	if installment != "" {
		delete(envelope, "installment")
		rest, err := json.Marshal(envelope)
		if err != nil {
			return nil, "", err
		}
		return rest, installment, nil
	}
	return json.RawMessage(raw), "", nil
}
