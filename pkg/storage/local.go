// Package storage provides the default on-disk file backend.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/campustrack/achievement_service/internal/interfaces"
)

type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) Save(_ context.Context, folder, filename string, b []byte) (interfaces.StoredObject, error) {
	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return interfaces.StoredObject{}, err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return interfaces.StoredObject{}, err
	}
	return interfaces.StoredObject{Path: path}, nil
}

// Remove deletes the blob. A missing file is not an error: the record is
// the source of truth and deletion must win.
func (s *LocalStorage) Remove(_ context.Context, obj interfaces.StoredObject) error {
	if obj.Path == "" {
		return nil
	}
	if err := os.Remove(obj.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
