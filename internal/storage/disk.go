package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStorage implements Storage on the local filesystem under a single
// root directory. Each object lives in its own uuid-named file.
type DiskStorage struct {
	root string
}

var _ Storage = (*DiskStorage)(nil)

// NewDiskStorage creates root (and parents) if needed.
func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %q: %w", root, err)
	}
	return &DiskStorage{root: root}, nil
}

// Put streams reader into a fresh uuid-named file. The file is synced
// before the key is returned, so the write is durable.
func (s *DiskStorage) Put(_ context.Context, reader io.Reader, _ int64) (string, error) {
	key := uuid.NewString()
	path := filepath.Join(s.root, key)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create object file: %w", err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("sync object: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close object: %w", err)
	}
	return key, nil
}

// Get opens the object's file for reading.
func (s *DiskStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.Base(key)))
	if os.IsNotExist(err) {
		return nil, ErrObjectMissing
	}
	if err != nil {
		return nil, fmt.Errorf("open object %q: %w", key, err)
	}
	return f, nil
}

// Ping verifies the storage root is still a directory.
func (s *DiskStorage) Ping(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("stat storage root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage root %q is not a directory", s.root)
	}
	return nil
}
