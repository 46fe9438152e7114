package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

type recordingHandler struct {
	mu     sync.Mutex
	types  []string
	events []shared.DomainEvent
	err    error
	panics bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("boom")
	}
	h.mu.Lock()
	h.events = append(h.events, event)
	h.mu.Unlock()
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func (h *recordingHandler) received() []shared.DomainEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]shared.DomainEvent(nil), h.events...)
}

func TestInMemoryEventBus_PublishToSubscriber(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{cart.UpdatedEventType}}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), cart.NewUpdatedEvent("sess-1"))
	require.NoError(t, err)

	events := handler.received()
	require.Len(t, events, 1)
	assert.Equal(t, cart.UpdatedEventType, events[0].EventType())
}

func TestInMemoryEventBus_TypeFiltering(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	updated := &recordingHandler{types: []string{cart.UpdatedEventType}}
	opened := &recordingHandler{types: []string{cart.OpenRequestedEventType}}
	bus.Subscribe(updated)
	bus.Subscribe(opened)

	require.NoError(t, bus.Publish(context.Background(),
		cart.NewUpdatedEvent("sess-1"),
		cart.NewOpenRequestedEvent("sess-1"),
	))

	assert.Len(t, updated.received(), 1)
	assert.Len(t, opened.received(), 1)
}

func TestInMemoryEventBus_WildcardHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	all := &recordingHandler{}
	bus.Subscribe(all)

	require.NoError(t, bus.Publish(context.Background(),
		cart.NewUpdatedEvent("sess-1"),
		cart.NewOpenRequestedEvent("sess-2"),
	))

	assert.Len(t, all.received(), 2)
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &recordingHandler{types: []string{cart.UpdatedEventType}, err: errors.New("nope")}
	healthy := &recordingHandler{types: []string{cart.UpdatedEventType}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), cart.NewUpdatedEvent("sess-1")))
	assert.Len(t, healthy.received(), 1)
}

func TestInMemoryEventBus_HandlerPanicIsRecovered(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	panicking := &recordingHandler{types: []string{cart.UpdatedEventType}, panics: true}
	healthy := &recordingHandler{types: []string{cart.UpdatedEventType}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NotPanics(t, func() {
		_ = bus.Publish(context.Background(), cart.NewUpdatedEvent("sess-1"))
	})
	assert.Len(t, healthy.received(), 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{cart.UpdatedEventType}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), cart.NewUpdatedEvent("sess-1")))
	assert.Empty(t, handler.received())
}

func TestHandlerRegistry_RegisterAndGet(t *testing.T) {
	registry := NewHandlerRegistry()
	specific := &recordingHandler{}
	wildcard := &recordingHandler{}

	registry.Register(specific, cart.UpdatedEventType)
	registry.Register(wildcard)

	handlers := registry.GetHandlers(cart.UpdatedEventType)
	assert.Len(t, handlers, 2)

	handlers = registry.GetHandlers("unknown.event")
	assert.Len(t, handlers, 1)
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	registry := NewHandlerRegistry()
	handler := &recordingHandler{}

	registry.Register(handler, cart.UpdatedEventType, cart.OpenRequestedEventType)
	registry.Unregister(handler)

	assert.Empty(t, registry.GetHandlers(cart.UpdatedEventType))
	assert.Empty(t, registry.GetHandlers(cart.OpenRequestedEventType))
}
