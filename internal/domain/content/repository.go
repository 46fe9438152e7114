package content

import (
	"context"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// BannerRepository is the persistence port for banners
type BannerRepository interface {
	shared.Repository[Banner]

	// FindActive returns visible banners in sort order
	FindActive(ctx context.Context) ([]Banner, error)
}

// BlogPostRepository is the persistence port for blog posts
type BlogPostRepository interface {
	shared.Repository[BlogPost]

	// FindBySlug looks up a post by its slug
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	// FindPublished returns published posts, newest first
	FindPublished(ctx context.Context, filter shared.Filter) ([]BlogPost, error)
}
