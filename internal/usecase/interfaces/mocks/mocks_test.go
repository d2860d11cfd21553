package mock_interfaces

import "ucraft_estimates/internal/usecase/interfaces"

// Fails to compile when a hand-maintained mock drifts from its interface.
var (
	_ interfaces.IBlobStore                    = (*MockIBlobStore)(nil)
	_ interfaces.ICatalogSource                = (*MockICatalogSource)(nil)
	_ interfaces.IDocumentExporter             = (*MockIDocumentExporter)(nil)
	_ interfaces.ICurrencyFormatter            = (*MockICurrencyFormatter)(nil)
	_ interfaces.IEstimateRepository           = (*MockIEstimateRepository)(nil)
	_ interfaces.IInstallmentPaymentRepository = (*MockIInstallmentPaymentRepository)(nil)
	_ interfaces.IPaymentGateway               = (*MockIPaymentGateway)(nil)
)
