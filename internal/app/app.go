// Package app builds the use cases from configuration. Both the HTTP server
// and the command line tool start from here.
package app

import (
	"context"
	"fmt"
	"log"

	"ucraft_estimates/internal/adapter/persistence/repository"
	"ucraft_estimates/internal/config"
	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/domain/lifecycle"
	"ucraft_estimates/internal/infrastructure/catalog"
	"ucraft_estimates/internal/infrastructure/database"
	"ucraft_estimates/internal/infrastructure/export"
	"ucraft_estimates/internal/infrastructure/payments"
	"ucraft_estimates/internal/usecase"
	"ucraft_estimates/internal/usecase/interfaces"
)

type Services struct {
	Estimates *usecase.EstimateUseCase
	Documents *usecase.DocumentUseCase
	Catalog   *usecase.CatalogUseCase
	Payments  *usecase.InstallmentPaymentUseCase
}

func Build(ctx context.Context, cfg *config.Config) (*Services, error) {
	catalogUseCase, err := usecase.NewCatalogUseCase(ctx, catalog.NewYAMLSource(cfg.CatalogFile))
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	seed := catalogUseCase.SeedEstimates()

	store, err := NewBlobStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	repo := repository.NewBlobRepository(store, seed)

	machine := lifecycle.NewMachine()
	machine.OnEnter(entities.EstimateStatusSent, logTransition)
	machine.OnEnter(entities.EstimateStatusCompleted, logTransition)
	estimateUseCase := usecase.NewEstimateUseCase(repo, machine, seed)

	pdf := export.NewPDFExporter(cfg.ExportFontPath)
	if !pdf.RendersHangul() {
		log.Printf("[document][wiring] EXPORT_FONT_PATH not set; PDF exports use the built-in font and Korean text will not render")
	}
	documentUseCase := usecase.NewDocumentUseCase(
		estimateUseCase,
		export.NewCurrencyFormatter(cfg.CurrencySymbol),
		pdf,
		export.NewXLSXExporter(),
	)

	// left as a nil interface so the use case reports it as not configured
	var gateway interfaces.IPaymentGateway
	if gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken); err != nil {
		log.Printf("[payment][wiring] gateway unavailable, payments will be rejected err=%v", err)
	} else {
		gateway = gw
	}

	return &Services{
		Estimates: estimateUseCase,
		Documents: documentUseCase,
		Catalog:   catalogUseCase,
		Payments:  usecase.NewInstallmentPaymentUseCase(repo, estimateUseCase, gateway),
	}, nil
}

// NewBlobStore picks the file store or DynamoDB from cfg.StorageDriver.
func NewBlobStore(ctx context.Context, cfg *config.Config) (interfaces.IBlobStore, error) {
	if cfg.StorageDriver == config.StorageDynamoDB {
		client, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to dynamodb: %w", err)
		}
		log.Printf("[storage] using dynamodb table=%s", cfg.DynamoDBTable)
		return repository.NewDynamoBlobStore(client, cfg.DynamoDBTable), nil
	}

	store, err := repository.NewFileBlobStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening data dir: %w", err)
	}
	log.Printf("[storage] using file store dir=%s", cfg.DataDir)
	return store, nil
}

func logTransition(_ context.Context, e entities.Estimate) {
	log.Printf("[estimate][lifecycle] entered status=%s estimate_id=%s", e.Status, e.ID)
}
