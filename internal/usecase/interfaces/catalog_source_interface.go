package interfaces

//go:generate mockgen -source=catalog_source_interface.go -destination=mocks/mock_catalog_source.go -package=mock_interfaces

import (
	"context"

	"ucraft_estimates/internal/domain/entities"
)

// ICatalogSource loads the read-only reference data (price list, templates, seed estimates).
type ICatalogSource interface {
	Load(ctx context.Context) (entities.ReferenceData, error)
}
