// Package storage persists uploaded files on the local filesystem, mirroring
// the layout the web handlers serve from: <root>/<category>/<uuid><ext>.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// DiskStore writes uploads under a root directory, one subdirectory per
// category. Stored names are random so originals cannot collide or traverse.
type DiskStore struct {
	root string
}

// NewDiskStore ensures root exists and returns a store rooted there.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(_ context.Context, category string, upload ports.ImageUpload) (string, error) {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + filepath.Ext(upload.Filename)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, upload.Data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}
