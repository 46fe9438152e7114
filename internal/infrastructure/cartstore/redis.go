package cartstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
)

// RedisStore keeps carts in Redis, one key per shopper session. Keys
// expire after the configured TTL so abandoned carts clean themselves up;
// every save refreshes the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed cart store
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger.Named("cart_store"),
	}
}

func cartKey(sessionID string) string {
	return cart.StorageKey + ":" + sessionID
}

// Load returns the session's cart. A missing key or malformed payload
// yields an empty cart, never an error.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(), nil
		}
		return nil, err
	}

	c := cart.FromJSON([]byte(raw))
	if c.IsEmpty() && len(raw) > 0 && raw != "[]" {
		s.logger.Warn("discarded malformed cart payload",
			zap.String("session_id", sessionID),
		)
	}
	return c, nil
}

// Save overwrites the session's cart and refreshes its TTL.
// Last write wins; there is no merging of concurrent saves.
func (s *RedisStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	payload, err := c.ToJSON()
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), payload, s.ttl).Err()
}

// Clear removes the session's cart
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

// Ensure RedisStore implements cart.Store
var _ cart.Store = (*RedisStore)(nil)
