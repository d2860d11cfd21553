package response

import (
	"time"

	"ucraft_estimates/internal/domain/entities"
)

type InstallmentPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	EstimateID  string    `json:"estimate_id"`
	Installment string    `json:"installment"`
	Label       string    `json:"label"`
	Amount      int64     `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromInstallmentPayment(p entities.InstallmentPayment) InstallmentPaymentResponse {
	return InstallmentPaymentResponse{
		PaymentID:          p.ID,
		EstimateID:         p.EstimateID,
		Installment:        string(p.Installment),
		Label:              p.Installment.Label(),
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

// PaymentScheduleResponse lists the payments of an estimate with the
// installment each one settles. Outstanding lists installments without an
// approved payment.
type PaymentScheduleResponse struct {
	EstimateID  string                       `json:"estimate_id"`
	Payments    []InstallmentPaymentResponse `json:"payments"`
	Outstanding []string                     `json:"outstanding"`
}

func FromInstallmentPayments(estimateID string, payments []entities.InstallmentPayment) PaymentScheduleResponse {
	res := PaymentScheduleResponse{
		EstimateID:  estimateID,
		Payments:    make([]InstallmentPaymentResponse, 0, len(payments)),
		Outstanding: []string{},
	}
	paid := map[entities.Installment]bool{}
	for _, p := range payments {
		res.Payments = append(res.Payments, FromInstallmentPayment(p))
		if p.Status == entities.PaymentStatusApproved {
			paid[p.Installment] = true
		}
	}
	for _, kind := range entities.Installments {
		if !paid[kind] {
			res.Outstanding = append(res.Outstanding, string(kind))
		}
	}
	return res
}
