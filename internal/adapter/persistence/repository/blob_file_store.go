package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"ucraft_estimates/internal/usecase/interfaces"
)

// FileBlobStore keeps one file per key under dir. Writes go through a
// temporary file and a rename, so readers never see a partial blob.
type FileBlobStore struct {
	dir string
	mu  sync.RWMutex
}

var _ interfaces.IBlobStore = (*FileBlobStore)(nil)

func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileBlobStore{dir: dir}, nil
}

func (s *FileBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, interfaces.ErrBlobNotFound
	}
	return data, err
}

func (s *FileBlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	file, err := os.CreateTemp(s.dir, ".blob-*")
	if err != nil {
		return fmt.Errorf("creating temporary blob file: %w", err)
	}
	tmp := file.Name()
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing temporary blob file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing temporary blob file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temporary blob file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming blob file into place: %w", err)
	}
	return nil
}

// path escapes the key so "payments/<id>" stays a single file.
func (s *FileBlobStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".cbor")
}
