package cart

import "context"

// Store is the persistence port for session carts.
//
// Load never fails on malformed stored data: a value that does not parse is
// treated as an empty cart. Save replaces the whole stored value; concurrent
// writers race last-write-wins with no merge or version check, matching the
// browser-storage semantics of the original storefront.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, c *Cart) error
	Clear(ctx context.Context, sessionID string) error
}
