package content

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/priyam/internal/domain/content"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

type mockBannerRepository struct {
	mock.Mock
}

func (m *mockBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Banner), args.Error(1)
}

func (m *mockBannerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Banner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.Banner), args.Error(1)
}

func (m *mockBannerRepository) Save(ctx context.Context, b *content.Banner) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBannerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBannerRepository) FindActive(ctx context.Context) ([]content.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]content.Banner), args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *mockPostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.BlogPost), args.Error(1)
}

func (m *mockPostRepository) Save(ctx context.Context, p *content.BlogPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepository) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *mockPostRepository) FindPublished(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.BlogPost), args.Error(1)
}

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func testBanner(t *testing.T) *content.Banner {
	t.Helper()
	banner, err := content.NewBanner("Monsoon Sale", "monsoon.jpg", "/products")
	require.NoError(t, err)
	return banner
}

func testPost(t *testing.T) *content.BlogPost {
	t.Helper()
	post, err := content.NewBlogPost("Benefits of Amla", "", "<p>Amla is rich in vitamin C.</p>")
	require.NoError(t, err)
	return post
}

func TestBannerServiceCreate(t *testing.T) {
	banners := new(mockBannerRepository)
	svc := NewBannerService(banners)

	banners.On("Save", mock.Anything, mock.AnythingOfType("*content.Banner")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateBannerRequest{
		Title:    "Monsoon Sale",
		Subtitle: "Up to 40% off",
		Image:    "monsoon.jpg",
		LinkURL:  "/products",
	})

	require.NoError(t, err)
	assert.Equal(t, "Monsoon Sale", resp.Title)
	assert.Equal(t, "Up to 40% off", resp.Subtitle)
	assert.True(t, resp.Active)
	banners.AssertExpectations(t)
}

func TestBannerServiceCreateRequiresImage(t *testing.T) {
	banners := new(mockBannerRepository)
	svc := NewBannerService(banners)

	_, err := svc.Create(context.Background(), CreateBannerRequest{Title: "No image"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_IMAGE", domainErr.Code)
	banners.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBannerServiceUpdateTogglesVisibility(t *testing.T) {
	banners := new(mockBannerRepository)
	svc := NewBannerService(banners)

	banner := testBanner(t)
	banners.On("FindByID", mock.Anything, banner.ID).Return(banner, nil)
	banners.On("Save", mock.Anything, banner).Return(nil)

	resp, err := svc.Update(context.Background(), banner.ID, UpdateBannerRequest{Active: boolPtr(false)})

	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, "Monsoon Sale", resp.Title)
}

func TestBannerServiceUpdateNotFound(t *testing.T) {
	banners := new(mockBannerRepository)
	svc := NewBannerService(banners)

	id := uuid.New()
	banners.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), id, UpdateBannerRequest{})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BANNER_NOT_FOUND", domainErr.Code)
}

func TestBannerServiceListActive(t *testing.T) {
	banners := new(mockBannerRepository)
	svc := NewBannerService(banners)

	banner := testBanner(t)
	banners.On("FindActive", mock.Anything).Return([]content.Banner{*banner}, nil)

	items, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "monsoon.jpg", items[0].Image)
}

func TestPostServiceCreateDraft(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	posts.On("Save", mock.Anything, mock.AnythingOfType("*content.BlogPost")).Return(nil)

	resp, err := svc.Create(context.Background(), CreatePostRequest{
		Title: "Benefits of Amla",
		Body:  "<p>Amla is rich in vitamin C.</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "benefits-of-amla", resp.Slug)
	assert.False(t, resp.Published)
	assert.Nil(t, resp.PublishedAt)
}

func TestPostServiceCreatePublished(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	posts.On("Save", mock.Anything, mock.AnythingOfType("*content.BlogPost")).Return(nil)

	resp, err := svc.Create(context.Background(), CreatePostRequest{
		Title:     "Benefits of Amla",
		Body:      "<p>Amla is rich in vitamin C.</p>",
		Author:    "Priyam Team",
		Published: true,
	})

	require.NoError(t, err)
	assert.True(t, resp.Published)
	require.NotNil(t, resp.PublishedAt)
	assert.Equal(t, "Priyam Team", resp.Author)
}

func TestPostServiceUpdateUnpublish(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	post := testPost(t)
	post.Publish()
	posts.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	posts.On("Save", mock.Anything, post).Return(nil)

	resp, err := svc.Update(context.Background(), post.ID, UpdatePostRequest{Published: boolPtr(false)})

	require.NoError(t, err)
	assert.False(t, resp.Published)
	assert.Nil(t, resp.PublishedAt)
}

func TestPostServiceUpdatePartial(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	post := testPost(t)
	posts.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	posts.On("Save", mock.Anything, post).Return(nil)

	resp, err := svc.Update(context.Background(), post.ID, UpdatePostRequest{
		Excerpt: strPtr("A short introduction to amla."),
	})

	require.NoError(t, err)
	assert.Equal(t, "Benefits of Amla", resp.Title)
	assert.Equal(t, "A short introduction to amla.", resp.Excerpt)
	assert.Equal(t, "<p>Amla is rich in vitamin C.</p>", resp.Body)
}

func TestPostServiceGetBySlugDraftHidden(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	post := testPost(t)
	posts.On("FindBySlug", mock.Anything, post.Slug).Return(post, nil)

	_, err := svc.GetBySlug(context.Background(), post.Slug)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "POST_NOT_FOUND", domainErr.Code)
}

func TestPostServiceGetBySlugPublished(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	post := testPost(t)
	post.Publish()
	posts.On("FindBySlug", mock.Anything, post.Slug).Return(post, nil)

	resp, err := svc.GetBySlug(context.Background(), post.Slug)

	require.NoError(t, err)
	assert.Equal(t, post.ID, resp.ID)
}

func TestPostServiceListPublished(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	post := testPost(t)
	post.Publish()
	posts.On("FindPublished", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.OrderBy == "published_at" && f.OrderDir == "desc"
	})).Return([]content.BlogPost{*post}, nil)

	items, err := svc.ListPublished(context.Background(), PostListFilter{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "benefits-of-amla", items[0].Slug)
}

func TestPostServiceList(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	draft := testPost(t)
	posts.On("FindAll", mock.Anything, mock.Anything).Return([]content.BlogPost{*draft}, nil)
	posts.On("Count", mock.Anything, mock.Anything).Return(int64(4), nil)

	page, err := svc.List(context.Background(), PostListFilter{Page: 1, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	require.Len(t, page.Items, 1)
	assert.False(t, page.Items[0].Published)
}

func TestPostServiceDeleteNotFound(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	id := uuid.New()
	posts.On("Delete", mock.Anything, id).Return(shared.ErrNotFound)

	err := svc.Delete(context.Background(), id)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "POST_NOT_FOUND", domainErr.Code)
}
