package content

import (
	"time"

	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// BlogPost is an editorial article shown on the storefront blog
type BlogPost struct {
	shared.BaseAggregateRoot
	Title       string     `gorm:"type:varchar(200);not null"`
	Slug        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	Excerpt     string     `gorm:"type:varchar(500)"`
	Body        string     `gorm:"type:text;not null"` // Rendered as HTML by the storefront
	CoverImage  string     `gorm:"type:varchar(500)"`
	Author      string     `gorm:"type:varchar(100)"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (BlogPost) TableName() string {
	return "blog_posts"
}

// NewBlogPost creates a new draft post. An empty slug is derived from
// the title.
func NewBlogPost(title, slug, body string) (*BlogPost, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Post title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Post title cannot exceed 200 characters")
	}
	if body == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Post body cannot be empty")
	}
	if slug == "" {
		slug = catalog.Slugify(title)
	}

	return &BlogPost{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Slug:              slug,
		Body:              body,
	}, nil
}

// Update replaces the post's editorial fields
func (p *BlogPost) Update(title, excerpt, body, coverImage, author string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Post title cannot be empty")
	}
	if body == "" {
		return shared.NewDomainError("INVALID_BODY", "Post body cannot be empty")
	}

	p.Title = title
	p.Excerpt = excerpt
	p.Body = body
	p.CoverImage = coverImage
	p.Author = author
	p.UpdatedAt = time.Now()

	return nil
}

// Publish makes the post visible. Publishing an already-published post
// keeps its original publication time.
func (p *BlogPost) Publish() {
	if p.PublishedAt != nil {
		return
	}
	now := time.Now()
	p.PublishedAt = &now
	p.UpdatedAt = now
}

// Unpublish reverts the post to a draft
func (p *BlogPost) Unpublish() {
	p.PublishedAt = nil
	p.UpdatedAt = time.Now()
}

// IsPublished reports whether the post is visible on the storefront
func (p *BlogPost) IsPublished() bool {
	return p.PublishedAt != nil
}
