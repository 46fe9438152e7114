package content

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/priyam/internal/domain/content"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// PostService handles blog post management and the storefront blog queries
type PostService struct {
	posts content.BlogPostRepository
}

// NewPostService creates a new PostService
func NewPostService(posts content.BlogPostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create creates a new blog post, published immediately when requested
func (s *PostService) Create(ctx context.Context, req CreatePostRequest) (*PostResponse, error) {
	post, err := content.NewBlogPost(req.Title, req.Slug, req.Body)
	if err != nil {
		return nil, err
	}
	if req.Excerpt != "" || req.CoverImage != "" || req.Author != "" {
		if err := post.Update(req.Title, req.Excerpt, req.Body, req.CoverImage, req.Author); err != nil {
			return nil, err
		}
	}
	if req.Published {
		post.Publish()
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	resp := ToPostResponse(post)
	return &resp, nil
}

// Update updates an existing post. Only supplied fields change.
func (s *PostService) Update(ctx context.Context, id uuid.UUID, req UpdatePostRequest) (*PostResponse, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("POST_NOT_FOUND", "Post not found")
		}
		return nil, err
	}

	title := post.Title
	excerpt := post.Excerpt
	body := post.Body
	coverImage := post.CoverImage
	author := post.Author
	if req.Title != nil {
		title = *req.Title
	}
	if req.Excerpt != nil {
		excerpt = *req.Excerpt
	}
	if req.Body != nil {
		body = *req.Body
	}
	if req.CoverImage != nil {
		coverImage = *req.CoverImage
	}
	if req.Author != nil {
		author = *req.Author
	}
	if err := post.Update(title, excerpt, body, coverImage, author); err != nil {
		return nil, err
	}

	if req.Published != nil {
		if *req.Published {
			post.Publish()
		} else {
			post.Unpublish()
		}
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	resp := ToPostResponse(post)
	return &resp, nil
}

// Delete removes a post
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("POST_NOT_FOUND", "Post not found")
		}
		return err
	}
	return nil
}

// Get returns a post by id for the back office
func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*PostResponse, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("POST_NOT_FOUND", "Post not found")
		}
		return nil, err
	}

	resp := ToPostResponse(post)
	return &resp, nil
}

// GetBySlug returns a published post by slug for the storefront
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*PostResponse, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("POST_NOT_FOUND", "Post not found")
		}
		return nil, err
	}
	if !post.IsPublished() {
		return nil, shared.NewDomainError("POST_NOT_FOUND", "Post not found")
	}

	resp := ToPostResponse(post)
	return &resp, nil
}

// ListPublished returns published posts, newest first, for the storefront
func (s *PostService) ListPublished(ctx context.Context, filter PostListFilter) ([]PostListItemResponse, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.OrderBy = "published_at"

	posts, err := s.posts.FindPublished(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]PostListItemResponse, 0, len(posts))
	for i := range posts {
		items = append(items, ToPostListItemResponse(&posts[i]))
	}
	return items, nil
}

// List returns all posts for the back office, drafts included
func (s *PostService) List(ctx context.Context, filter PostListFilter) (*shared.Paginated[PostListItemResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	posts, err := s.posts.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.posts.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]PostListItemResponse, 0, len(posts))
	for i := range posts {
		items = append(items, ToPostListItemResponse(&posts[i]))
	}

	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}
