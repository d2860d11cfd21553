package mocks

import "ucraft_estimates/internal/usecase"

// Fails to compile when a hand-maintained mock drifts from its interface.
var (
	_ usecase.IEstimateUseCase           = (*MockIEstimateUseCase)(nil)
	_ usecase.IDocumentUseCase           = (*MockIDocumentUseCase)(nil)
	_ usecase.ICatalogUseCase            = (*MockICatalogUseCase)(nil)
	_ usecase.IInstallmentPaymentUseCase = (*MockIInstallmentPaymentUseCase)(nil)
)
