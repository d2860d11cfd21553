package interfaces

//go:generate mockgen -source=blob_store_interface.go -destination=mocks/mock_blob_store.go -package=mock_interfaces

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Get for a key that was never written.
var ErrBlobNotFound = errors.New("blob not found")

// IBlobStore is a key-value store of opaque payloads (DynamoDB, local files).
type IBlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
