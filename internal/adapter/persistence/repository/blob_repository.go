package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/usecase/interfaces"
)

type estimatesRecord struct {
	Estimates []entities.Estimate `cbor:"estimates"`
}

type supplierRecord struct {
	Supplier entities.SupplierProfile `cbor:"supplier"`
}

type paymentsRecord struct {
	EstimateID string                        `cbor:"estimate_id"`
	Payments   []entities.InstallmentPayment `cbor:"payments"`
}

// BlobRepository keeps the estimate collection, the default supplier and
// payments as CBOR blobs in an IBlobStore.
//
// Read rules:
//   - a missing estimates blob yields the seed collection
//   - a blob that cannot be decoded is logged and treated as missing
//   - store failures come back as *interfaces.StorageUnavailableError
type BlobRepository struct {
	store interfaces.IBlobStore
	seed  []entities.Estimate
}

var (
	_ interfaces.IEstimateRepository           = (*BlobRepository)(nil)
	_ interfaces.IInstallmentPaymentRepository = (*BlobRepository)(nil)
)

func NewBlobRepository(store interfaces.IBlobStore, seed []entities.Estimate) *BlobRepository {
	return &BlobRepository{store: store, seed: seed}
}

func (r *BlobRepository) LoadEstimates(ctx context.Context) ([]entities.Estimate, error) {
	data, found, err := r.get(ctx, "load estimates", estimatesKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return r.seedCopy(), nil
	}

	var rec estimatesRecord
	if err := unmarshal(data, &rec); err != nil {
		log.Printf("[estimate][repository] stored estimates unreadable, using seed err=%v", err)
		return r.seedCopy(), nil
	}
	if rec.Estimates == nil {
		rec.Estimates = []entities.Estimate{}
	}
	return rec.Estimates, nil
}

func (r *BlobRepository) SaveEstimates(ctx context.Context, estimates []entities.Estimate) error {
	if estimates == nil {
		estimates = []entities.Estimate{}
	}
	return r.put(ctx, "save estimates", estimatesKey, estimatesRecord{Estimates: estimates})
}

func (r *BlobRepository) LoadDefaultSupplier(ctx context.Context) (entities.SupplierProfile, error) {
	data, found, err := r.get(ctx, "load supplier", defaultSupplierKey)
	if err != nil || !found {
		return entities.SupplierProfile{}, err
	}

	var rec supplierRecord
	if err := unmarshal(data, &rec); err != nil {
		log.Printf("[estimate][repository] stored supplier unreadable err=%v", err)
		return entities.SupplierProfile{}, nil
	}
	return rec.Supplier, nil
}

func (r *BlobRepository) SaveDefaultSupplier(ctx context.Context, profile entities.SupplierProfile) error {
	return r.put(ctx, "save supplier", defaultSupplierKey, supplierRecord{Supplier: profile})
}

func (r *BlobRepository) LoadPayments(ctx context.Context, estimateID string) ([]entities.InstallmentPayment, error) {
	data, found, err := r.get(ctx, "load payments", paymentsKey(estimateID))
	if err != nil {
		return nil, err
	}
	out := []entities.InstallmentPayment{}
	if !found {
		return out, nil
	}

	var rec paymentsRecord
	if err := unmarshal(data, &rec); err != nil {
		log.Printf("[payment][repository] stored payments unreadable estimate_id=%s err=%v", estimateID, err)
		return out, nil
	}
	for _, p := range rec.Payments {
		if len(p.ProviderPayloadRaw) > 0 {
			var parsed map[string]any
			if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
				p.ProviderPayload = parsed
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *BlobRepository) SavePayments(ctx context.Context, estimateID string, payments []entities.InstallmentPayment) error {
	if payments == nil {
		payments = []entities.InstallmentPayment{}
	}
	return r.put(ctx, "save payments", paymentsKey(estimateID), paymentsRecord{EstimateID: estimateID, Payments: payments})
}

func (r *BlobRepository) get(ctx context.Context, op, key string) ([]byte, bool, error) {
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, interfaces.ErrBlobNotFound) {
		return nil, false, nil
	}
	if err != nil {
		log.Printf("[repository] %s failed key=%s err=%v", op, key, err)
		return nil, false, &interfaces.StorageUnavailableError{Op: op, Err: err}
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

func (r *BlobRepository) put(ctx context.Context, op, key string, v any) error {
	data, err := marshal(v)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, key, data); err != nil {
		log.Printf("[repository] %s failed key=%s err=%v", op, key, err)
		return &interfaces.StorageUnavailableError{Op: op, Err: err}
	}
	return nil
}

func (r *BlobRepository) seedCopy() []entities.Estimate {
	out := make([]entities.Estimate, len(r.seed))
	for i := range r.seed {
		out[i] = r.seed[i].Clone()
	}
	return out
}
