package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// MemoryQuoteStateRepository keeps encoded state blobs in process memory.
// Blobs go through the same encoding as the remote backends.
type MemoryQuoteStateRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryQuoteStateRepository creates an empty in-memory repository.
func NewMemoryQuoteStateRepository() *MemoryQuoteStateRepository {
	return &MemoryQuoteStateRepository{blobs: make(map[string][]byte)}
}

// Load decodes the blob stored under key.
func (r *MemoryQuoteStateRepository) Load(ctx context.Context, key string) (*model.QuoteState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data, ok := r.blobs[key]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	state, err := model.DecodeQuoteState(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &state, nil
}

// Save encodes state and stores it under key.
func (r *MemoryQuoteStateRepository) Save(ctx context.Context, key string, state model.QuoteState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := model.EncodeQuoteState(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.blobs[key] = data
	r.mu.Unlock()
	return nil
}

// PutRaw stores a raw blob under key, bypassing encoding.
func (r *MemoryQuoteStateRepository) PutRaw(key string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[key] = append([]byte(nil), data...)
}

// Raw returns the stored blob for key.
func (r *MemoryQuoteStateRepository) Raw(key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.blobs[key]
	return data, ok
}
