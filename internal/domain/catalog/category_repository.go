package catalog

import (
	"context"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// CategoryRepository is the persistence port for categories
type CategoryRepository interface {
	shared.Repository[Category]

	// FindBySlug looks up a category by its storefront slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	// FindActive returns active categories in sort order
	FindActive(ctx context.Context) ([]Category, error)
	// ExistsBySlug reports whether a category with the slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
