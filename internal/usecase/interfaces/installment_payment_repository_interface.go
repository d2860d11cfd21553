package interfaces

//go:generate mockgen -source=installment_payment_repository_interface.go -destination=mocks/mock_installment_payment_repository.go -package=mock_interfaces

import (
	"context"

	"ucraft_estimates/internal/domain/entities"
)

// IInstallmentPaymentRepository persists the payments recorded against one estimate.

type IInstallmentPaymentRepository interface {
	LoadPayments(ctx context.Context, estimateID string) ([]entities.InstallmentPayment, error)
	SavePayments(ctx context.Context, estimateID string, payments []entities.InstallmentPayment) error
}
