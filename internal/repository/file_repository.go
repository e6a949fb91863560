package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	model "agro-trade/internal/models"
)

// FileRepo persists the crop collection as a single JSON file. Saves go
// through a temp file plus rename so a crash mid-write never leaves a
// half-written collection behind.
type FileRepo struct {
	mu   sync.Mutex
	path string
}

// NewFileRepo creates a file-backed repository storing crops at path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

// LoadAll reads the full crop collection from disk. A missing file means the
// collection has never been saved and is treated as empty, not as a fault.
func (r *FileRepo) LoadAll() ([]model.Crop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Crop{}, nil
		}
		return nil, fmt.Errorf("file repo: read %s: %w", r.path, err)
	}

	if len(data) == 0 {
		return []model.Crop{}, nil
	}

	var crops []model.Crop
	if err := json.Unmarshal(data, &crops); err != nil {
		return nil, fmt.Errorf("file repo: decode %s: %w", r.path, err)
	}
	if crops == nil {
		crops = []model.Crop{}
	}
	return crops, nil
}

// SaveAll atomically replaces the persisted collection with crops.
func (r *FileRepo) SaveAll(crops []model.Crop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(crops, "", "  ")
	if err != nil {
		return fmt.Errorf("file repo: encode crops: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".crops-*.json")
	if err != nil {
		return fmt.Errorf("file repo: create temp file in %s: %w", dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("file repo: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("file repo: close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("file repo: rename %s to %s: %w", tmp.Name(), r.path, err)
	}
	return nil
}
