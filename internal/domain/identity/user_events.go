package identity

import (
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

const (
	EventTypeUserCreated = "UserCreated"

	AggregateTypeUser = "user"
)

// UserCreatedEvent is emitted when an admin user is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(u *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, u.ID),
		Username:        u.Username,
	}
}

// EventType returns the event type
func (e *UserCreatedEvent) EventType() string {
	return EventTypeUserCreated
}
