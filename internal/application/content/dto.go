package content

import (
	"time"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/priyam/internal/domain/content"
)

// CreateBannerRequest represents a request to create a banner
type CreateBannerRequest struct {
	Title     string `json:"title" binding:"max=200"`
	Subtitle  string `json:"subtitle" binding:"max=300"`
	Image     string `json:"image" binding:"required,max=500"`
	LinkURL   string `json:"link_url" binding:"max=500"`
	SortOrder *int   `json:"sort_order"`
}

// UpdateBannerRequest represents a request to update a banner
type UpdateBannerRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=200"`
	Subtitle  *string `json:"subtitle" binding:"omitempty,max=300"`
	Image     *string `json:"image" binding:"omitempty,max=500"`
	LinkURL   *string `json:"link_url" binding:"omitempty,max=500"`
	SortOrder *int    `json:"sort_order"`
	Active    *bool   `json:"active"`
}

// BannerResponse represents a banner in API responses
type BannerResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Image     string    `json:"image"`
	LinkURL   string    `json:"link_url"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest represents a request to create a blog post
type CreatePostRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	Slug       string `json:"slug" binding:"max=200"`
	Excerpt    string `json:"excerpt" binding:"max=500"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image" binding:"max=500"`
	Author     string `json:"author" binding:"max=100"`
	Published  bool   `json:"published"`
}

// UpdatePostRequest represents a request to update a blog post
type UpdatePostRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=1,max=200"`
	Excerpt    *string `json:"excerpt" binding:"omitempty,max=500"`
	Body       *string `json:"body"`
	CoverImage *string `json:"cover_image" binding:"omitempty,max=500"`
	Author     *string `json:"author" binding:"omitempty,max=100"`
	Published  *bool   `json:"published"`
}

// PostListFilter represents blog list pagination options
type PostListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PostResponse represents a blog post in API responses
type PostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"cover_image"`
	Author      string     `json:"author"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostListItemResponse is a post without its body, for list pages
type PostListItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"cover_image"`
	Author      string     `json:"author"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

// ToBannerResponse converts a domain Banner to BannerResponse
func ToBannerResponse(b *content.Banner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		Subtitle:  b.Subtitle,
		Image:     b.Image,
		LinkURL:   b.LinkURL,
		SortOrder: b.SortOrder,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
	}
}

// ToPostResponse converts a domain BlogPost to PostResponse
func ToPostResponse(p *content.BlogPost) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Body:        p.Body,
		CoverImage:  p.CoverImage,
		Author:      p.Author,
		Published:   p.IsPublished(),
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPostListItemResponse converts a domain BlogPost to its list form
func ToPostListItemResponse(p *content.BlogPost) PostListItemResponse {
	return PostListItemResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		Author:      p.Author,
		Published:   p.IsPublished(),
		PublishedAt: p.PublishedAt,
	}
}
