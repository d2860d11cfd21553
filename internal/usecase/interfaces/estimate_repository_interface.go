package interfaces

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/mock_estimate_repository.go -package=mock_interfaces

import (
	"context"
	"errors"
	"fmt"

	"ucraft_estimates/internal/domain/entities"
)

// ErrStorageUnavailable matches every *StorageUnavailableError through errors.Is.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageUnavailableError wraps a failure of the underlying store.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable (%s): %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error { return e.Err }

func (e *StorageUnavailableError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// IEstimateRepository persists the estimate collection and the default supplier.
//
// The collection is loaded and saved as a whole:
//   - LoadEstimates returns the seed collection when nothing was saved yet
//   - unreadable stored data is treated as "no data", never as an error
//   - SaveEstimates replaces the stored collection
type IEstimateRepository interface {
	LoadEstimates(ctx context.Context) ([]entities.Estimate, error)
	SaveEstimates(ctx context.Context, estimates []entities.Estimate) error
	LoadDefaultSupplier(ctx context.Context) (entities.SupplierProfile, error)
	SaveDefaultSupplier(ctx context.Context, profile entities.SupplierProfile) error
}
