package event

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// cartEventChannel is the Redis channel cart events are relayed over
const cartEventChannel = "priyam:cart:events"

// envelope is the wire format for relayed cart events
type envelope struct {
	InstanceID string `json:"instance_id"`
	EventType  string `json:"event_type"`
	SessionID  string `json:"session_id"`
}

// RedisCartBridge relays cart events between instances over Redis pub/sub.
// Locally published cart events go out to the channel; events arriving from
// other instances are re-published into the local bus so their SSE
// subscribers see them. The instance id keeps an instance from replaying
// its own messages.
type RedisCartBridge struct {
	client     *redis.Client
	local      shared.EventPublisher
	logger     *zap.Logger
	instanceID string

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
}

// NewRedisCartBridge creates a bridge bound to the local event bus
func NewRedisCartBridge(client *redis.Client, local shared.EventPublisher, logger *zap.Logger) *RedisCartBridge {
	return &RedisCartBridge{
		client:     client,
		local:      local,
		logger:     logger.Named("cart_bridge"),
		instanceID: uuid.NewString(),
	}
}

// EventTypes implements shared.EventHandler
func (b *RedisCartBridge) EventTypes() []string {
	return []string{cart.UpdatedEventType, cart.OpenRequestedEventType}
}

// Handle relays a locally published cart event to the Redis channel
func (b *RedisCartBridge) Handle(ctx context.Context, event shared.DomainEvent) error {
	sessionID := ""
	switch e := event.(type) {
	case *cart.UpdatedEvent:
		sessionID = e.SessionID
	case *cart.OpenRequestedEvent:
		sessionID = e.SessionID
	default:
		return nil
	}

	payload, err := json.Marshal(envelope{
		InstanceID: b.instanceID,
		EventType:  event.EventType(),
		SessionID:  sessionID,
	})
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, cartEventChannel, payload).Err()
}

// Start subscribes to the Redis channel and re-publishes foreign events
// into the local bus. Returns after the subscription is established.
func (b *RedisCartBridge) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pubsub != nil {
		return nil
	}

	b.pubsub = b.client.Subscribe(ctx, cartEventChannel)
	// Force the subscription before returning so no events are missed.
	if _, err := b.pubsub.Receive(ctx); err != nil {
		b.pubsub = nil
		return err
	}

	b.done = make(chan struct{})
	go b.consume(b.pubsub.Channel(), b.done)

	b.logger.Info("cart event bridge started")
	return nil
}

// Stop closes the Redis subscription
func (b *RedisCartBridge) Stop(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pubsub == nil {
		return nil
	}
	err := b.pubsub.Close()
	<-b.done
	b.pubsub = nil

	b.logger.Info("cart event bridge stopped")
	return err
}

func (b *RedisCartBridge) consume(ch <-chan *redis.Message, done chan struct{}) {
	defer close(done)

	for msg := range ch {
		var env envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			b.logger.Warn("dropping malformed cart event", zap.Error(err))
			continue
		}
		if env.InstanceID == b.instanceID {
			continue
		}

		var event shared.DomainEvent
		switch env.EventType {
		case cart.UpdatedEventType:
			event = cart.NewUpdatedEvent(env.SessionID)
		case cart.OpenRequestedEventType:
			event = cart.NewOpenRequestedEvent(env.SessionID)
		default:
			continue
		}

		if err := b.local.Publish(context.Background(), event); err != nil {
			b.logger.Error("failed to re-publish relayed cart event",
				zap.String("event_type", env.EventType),
				zap.Error(err),
			)
		}
	}
}

// Ensure RedisCartBridge implements EventHandler
var _ shared.EventHandler = (*RedisCartBridge)(nil)
