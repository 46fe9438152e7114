package cartstore

import (
	"context"
	"sync"

	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
)

// MemoryStore keeps carts in process memory. Used in tests and
// single-instance development setups without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewMemoryStore creates an in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]byte),
	}
}

// Load returns the session's cart, or an empty cart when absent
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	raw, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return cart.New(), nil
	}
	return cart.FromJSON(raw), nil
}

// Save overwrites the session's cart
func (s *MemoryStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	payload, err := c.ToJSON()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.carts[sessionID] = payload
	s.mu.Unlock()
	return nil
}

// Clear removes the session's cart
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}

// Ensure MemoryStore implements cart.Store
var _ cart.Store = (*MemoryStore)(nil)
