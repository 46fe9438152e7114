package cart

import (
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for cart notifications. Two distinct topics exist on purpose:
// UpdatedEventType is a pure invalidation signal (observers re-read the
// store), OpenRequestedEventType is a UI intent to open the cart panel.
// They fire independently: adding an item emits both, quantity changes emit
// only the invalidation.
const (
	UpdatedEventType       = "cart.updated"
	OpenRequestedEventType = "cart.open_requested"

	AggregateType = "cart"
)

// UpdatedEvent signals that a session's cart content changed.
// It carries no cart data; observers must re-read the store.
type UpdatedEvent struct {
	shared.BaseDomainEvent
	SessionID string `json:"session_id"`
}

// NewUpdatedEvent creates a cart invalidation event for a session
func NewUpdatedEvent(sessionID string) *UpdatedEvent {
	return &UpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(UpdatedEventType, AggregateType, uuid.Nil),
		SessionID:       sessionID,
	}
}

// OpenRequestedEvent signals that the cart panel should open for a session
type OpenRequestedEvent struct {
	shared.BaseDomainEvent
	SessionID string `json:"session_id"`
}

// NewOpenRequestedEvent creates a cart open-panel request for a session
func NewOpenRequestedEvent(sessionID string) *OpenRequestedEvent {
	return &OpenRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(OpenRequestedEventType, AggregateType, uuid.Nil),
		SessionID:       sessionID,
	}
}
