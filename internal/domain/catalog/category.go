package catalog

import (
	"time"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// CategoryStatus represents the status of a category
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// Category represents a storefront product category
type Category struct {
	shared.BaseAggregateRoot
	Name      string         `gorm:"type:varchar(100);not null"`
	Slug      string         `gorm:"type:varchar(200);not null;uniqueIndex"`
	Image     string         `gorm:"type:varchar(500)"`
	SortOrder int            `gorm:"not null;default:0"`
	Status    CategoryStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new active category. An empty slug is derived
// from the name.
func NewCategory(name, slug string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	category := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		Status:            CategoryStatusActive,
	}

	category.AddDomainEvent(NewCategoryCreatedEvent(category))

	return category, nil
}

// Update updates the category's display information
func (c *Category) Update(name, image string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = name
	c.Image = image
	c.UpdatedAt = time.Now()

	c.AddDomainEvent(NewCategoryUpdatedEvent(c))

	return nil
}

// UpdateSlug changes the category's URL slug
func (c *Category) UpdateSlug(slug string) error {
	if err := validateSlug(slug); err != nil {
		return err
	}

	c.Slug = slug
	c.UpdatedAt = time.Now()

	c.AddDomainEvent(NewCategoryUpdatedEvent(c))

	return nil
}

// SetSortOrder sets the display order of the category
func (c *Category) SetSortOrder(order int) {
	c.SortOrder = order
	c.UpdatedAt = time.Now()
}

// Activate activates the category
func (c *Category) Activate() error {
	if c.Status == CategoryStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Category is already active")
	}

	c.Status = CategoryStatusActive
	c.UpdatedAt = time.Now()

	return nil
}

// Deactivate hides the category from the storefront
func (c *Category) Deactivate() error {
	if c.Status == CategoryStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Category is already inactive")
	}

	c.Status = CategoryStatusInactive
	c.UpdatedAt = time.Now()

	return nil
}

// IsActive returns true if the category is active
func (c *Category) IsActive() bool {
	return c.Status == CategoryStatusActive
}

// validateCategoryName validates the category name
func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
