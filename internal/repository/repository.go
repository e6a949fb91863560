package repository

import (
	model "agro-trade/internal/models"
	"sync"
)

// CropStore defines the full-collection storage boundary for the auction
// ledger. Every operation works on the whole crop set: LoadAll returns the
// persisted collection and SaveAll replaces it. There are no partial updates
// and no transactions; the ledger owns the read-modify-write cycle.
type CropStore interface {
	LoadAll() ([]model.Crop, error)
	SaveAll(crops []model.Crop) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of CropStore
type MemoryRepo struct {
	mu    sync.RWMutex
	crops []model.Crop
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// LoadAll returns a deep copy of the stored crop collection. An empty store
// yields an empty slice, never an error.
func (r *MemoryRepo) LoadAll() ([]model.Crop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return model.CloneCrops(r.crops), nil
}

// SaveAll replaces the stored collection with a deep copy of crops.
func (r *MemoryRepo) SaveAll(crops []model.Crop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.crops = model.CloneCrops(crops)
	return nil
}
