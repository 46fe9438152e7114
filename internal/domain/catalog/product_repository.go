package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// ProductRepository is the persistence port for products
type ProductRepository interface {
	shared.Repository[Product]

	// FindBySlug looks up a product by its storefront slug
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	// FindActive returns active products, newest first
	FindActive(ctx context.Context, filter shared.Filter) ([]Product, error)
	// FindByCategory returns active products assigned to the category
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]Product, error)
	// ExistsBySlug reports whether a product with the slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
