package catalog

import (
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

const (
	EventTypeCategoryCreated = "CategoryCreated"
	EventTypeCategoryUpdated = "CategoryUpdated"

	AggregateTypeCategory = "category"
)

// CategoryCreatedEvent is emitted when a category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent
func NewCategoryCreatedEvent(c *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryCreated, AggregateTypeCategory, c.ID),
		Name:            c.Name,
		Slug:            c.Slug,
	}
}

// EventType returns the event type
func (e *CategoryCreatedEvent) EventType() string {
	return EventTypeCategoryCreated
}

// CategoryUpdatedEvent is emitted when category details change
type CategoryUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewCategoryUpdatedEvent creates a new CategoryUpdatedEvent
func NewCategoryUpdatedEvent(c *Category) *CategoryUpdatedEvent {
	return &CategoryUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryUpdated, AggregateTypeCategory, c.ID),
		Name:            c.Name,
		Slug:            c.Slug,
	}
}

// EventType returns the event type
func (e *CategoryUpdatedEvent) EventType() string {
	return EventTypeCategoryUpdated
}
