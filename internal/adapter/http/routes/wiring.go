package routes

import (
	"context"

	"ucraft_estimates/internal/adapter/http/handlers"
	"ucraft_estimates/internal/app"
	"ucraft_estimates/internal/config"
)

type handlerSet struct {
	estimates *handlers.EstimateHandler
	documents *handlers.DocumentHandler
	catalog   *handlers.CatalogHandler
	payments  *handlers.InstallmentPaymentHandler
}

func buildHandlers(ctx context.Context, cfg *config.Config) (*handlerSet, error) {
	svc, err := app.Build(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &handlerSet{
		estimates: handlers.NewEstimateHandler(svc.Estimates),
		documents: handlers.NewDocumentHandler(svc.Documents),
		catalog:   handlers.NewCatalogHandler(svc.Catalog),
		payments:  handlers.NewInstallmentPaymentHandler(svc.Payments),
	}, nil
}
