package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/dto"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/middleware"
)

// sseClient is one open cart event stream
type sseClient struct {
	id        string
	sessionID string
	ch        chan sseMessage
	done      chan struct{}
}

type sseMessage struct {
	event string
	data  string
}

// CartEventsHandler streams cart notifications to storefront tabs over
// SSE. It subscribes to the event bus and fans messages out to the
// clients whose session id matches; every tab of a session sees the
// same stream.
type CartEventsHandler struct {
	BaseHandler
	logger     *zap.Logger
	clients    sync.Map
	ctx        context.Context
	cancel     context.CancelFunc
	heartbeat  time.Duration
	maxClients int
}

// CartEventsOption configures the handler
type CartEventsOption func(*CartEventsHandler)

// WithHeartbeat sets the keep-alive interval
func WithHeartbeat(interval time.Duration) CartEventsOption {
	return func(h *CartEventsHandler) {
		h.heartbeat = interval
	}
}

// WithMaxClients caps the number of concurrent streams
func WithMaxClients(max int) CartEventsOption {
	return func(h *CartEventsHandler) {
		h.maxClients = max
	}
}

// NewCartEventsHandler creates a new CartEventsHandler
func NewCartEventsHandler(logger *zap.Logger, opts ...CartEventsOption) *CartEventsHandler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &CartEventsHandler{
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		heartbeat:  30 * time.Second,
		maxClients: 1000,
	}
	for _, opt := range opts {
		opt(h)
	}
	go h.sendHeartbeats()
	return h
}

// EventTypes implements shared.EventHandler
func (h *CartEventsHandler) EventTypes() []string {
	return []string{cart.UpdatedEventType, cart.OpenRequestedEventType}
}

// Handle implements shared.EventHandler. It forwards cart events to the
// streams of the matching session.
func (h *CartEventsHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	var sessionID string
	switch e := event.(type) {
	case *cart.UpdatedEvent:
		sessionID = e.SessionID
	case *cart.OpenRequestedEvent:
		sessionID = e.SessionID
	default:
		return nil
	}

	msg := sseMessage{
		event: event.EventType(),
		data:  fmt.Sprintf(`{"sessionId":%q,"timestamp":%d}`, sessionID, time.Now().Unix()),
	}
	h.broadcast(sessionID, msg)
	return nil
}

// Stop closes every open stream
func (h *CartEventsHandler) Stop() {
	h.cancel()
	h.clients.Range(func(_, value any) bool {
		if client, ok := value.(*sseClient); ok {
			close(client.done)
		}
		return true
	})
}

func (h *CartEventsHandler) broadcast(sessionID string, msg sseMessage) {
	h.clients.Range(func(_, value any) bool {
		client, ok := value.(*sseClient)
		if !ok {
			return true
		}
		if sessionID != "" && client.sessionID != sessionID {
			return true
		}

		select {
		case client.ch <- msg:
		default:
			h.logger.Warn("cart stream channel full, dropping message",
				zap.String("client_id", client.id))
		}
		return true
	})
}

func (h *CartEventsHandler) sendHeartbeats() {
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			h.broadcast("", sseMessage{
				event: "heartbeat",
				data:  fmt.Sprintf(`{"timestamp":%d}`, time.Now().Unix()),
			})
		}
	}
}

// Stream handles GET /cart/events
func (h *CartEventsHandler) Stream(c *gin.Context) {
	if h.maxClients > 0 && h.clientCount() >= h.maxClients {
		c.JSON(http.StatusServiceUnavailable,
			dto.NewErrorResponse("MAX_CONNECTIONS_REACHED", "Too many open event streams"))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	client := &sseClient{
		id:        uuid.NewString(),
		sessionID: middleware.GetCartSession(c),
		ch:        make(chan sseMessage, 16),
		done:      make(chan struct{}),
	}

	// The channel is never closed: broadcast may hold a reference to the
	// client after it is removed from the map, and a send on a closed
	// channel would panic the heartbeat goroutine. Deleting the entry is
	// enough; the channel is collected with the client.
	h.clients.Store(client.id, client)
	defer h.clients.Delete(client.id)

	h.logger.Debug("cart stream connected",
		zap.String("client_id", client.id),
		zap.String("session_id", client.sessionID))

	writeSSE(c.Writer, sseMessage{
		event: "connected",
		data:  fmt.Sprintf(`{"timestamp":%d}`, time.Now().Unix()),
	})
	c.Writer.Flush()

	reqCtx := c.Request.Context()
	for {
		select {
		case <-reqCtx.Done():
			return
		case <-client.done:
			return
		case <-h.ctx.Done():
			return
		case msg := <-client.ch:
			writeSSE(c.Writer, msg)
			c.Writer.Flush()
		}
	}
}

func (h *CartEventsHandler) clientCount() int {
	count := 0
	h.clients.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

func writeSSE(w io.Writer, msg sseMessage) {
	if msg.event != "" {
		fmt.Fprintf(w, "event: %s\n", msg.event)
	}
	fmt.Fprintf(w, "data: %s\n\n", msg.data)
}
