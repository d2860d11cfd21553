package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// Only approved payments count towards settling an estimate.
// The type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Installment names one part of the 30/40/30 payment split.
type Installment string

const (
	InstallmentContract Installment = "contract"
	InstallmentMiddle   Installment = "middle"
	InstallmentBalance  Installment = "balance"
)

// Installments lists the split in payment order.
var Installments = []Installment{InstallmentContract, InstallmentMiddle, InstallmentBalance}

func (i Installment) Valid() bool {
	switch i {
	case InstallmentContract, InstallmentMiddle, InstallmentBalance:
		return true
	}
	return false
}

// Label is the Korean name printed on documents.
func (i Installment) Label() string {
	switch i {
	case InstallmentContract:
		return "계약금"
	case InstallmentMiddle:
		return "중도금"
	case InstallmentBalance:
		return "잔금"
	}
	return string(i)
}

// InstallmentPayment records one installment paid against an estimate.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for querying/debugging.
type InstallmentPayment struct {
	ID          string        `json:"id" cbor:"id"`
	EstimateID  string        `json:"estimate_id" cbor:"estimate_id"`
	Installment Installment   `json:"installment" cbor:"installment"`
	Amount      int64         `json:"amount" cbor:"amount"`
	Date        time.Time     `json:"date" cbor:"date"`
	Status      PaymentStatus `json:"status" cbor:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty" cbor:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty" cbor:"-"`
}
