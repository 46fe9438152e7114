package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

func testCategory(t *testing.T) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory("Juices", "juices")
	require.NoError(t, err)
	category.ClearDomainEvents()
	return category
}

func TestCategoryServiceCreate(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	categories.On("ExistsBySlug", mock.Anything, "hair-care").Return(false, nil)
	categories.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateCategoryRequest{
		Name:      "Hair Care",
		Image:     "hair.jpg",
		SortOrder: intPtr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, "Hair Care", resp.Name)
	assert.Equal(t, "hair-care", resp.Slug)
	assert.Equal(t, "hair.jpg", resp.Image)
	assert.Equal(t, 3, resp.SortOrder)
	assert.Equal(t, "active", resp.Status)
	categories.AssertExpectations(t)
}

func TestCategoryServiceCreateDuplicateSlug(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	categories.On("ExistsBySlug", mock.Anything, "juices").Return(true, nil)

	_, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "Juices"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	categories.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryServiceUpdatePartial(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	category := testCategory(t)
	categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	categories.On("Save", mock.Anything, category).Return(nil)

	resp, err := svc.Update(context.Background(), category.ID, UpdateCategoryRequest{
		Image: strPtr("juices-banner.jpg"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Juices", resp.Name)
	assert.Equal(t, "juices-banner.jpg", resp.Image)
	categories.AssertExpectations(t)
}

func TestCategoryServiceUpdateSlugConflict(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	category := testCategory(t)
	categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	categories.On("ExistsBySlug", mock.Anything, "taken").Return(true, nil)

	_, err := svc.Update(context.Background(), category.ID, UpdateCategoryRequest{Slug: strPtr("taken")})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestCategoryServiceUpdateStatus(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	category := testCategory(t)
	categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	categories.On("Save", mock.Anything, category).Return(nil)

	resp, err := svc.Update(context.Background(), category.ID, UpdateCategoryRequest{Status: strPtr("inactive")})

	require.NoError(t, err)
	assert.Equal(t, "inactive", resp.Status)
	assert.False(t, category.IsActive())
}

func TestCategoryServiceUpdateNotFound(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	id := uuid.New()
	categories.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), id, UpdateCategoryRequest{Name: strPtr("x")})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATEGORY_NOT_FOUND", domainErr.Code)
}

func TestCategoryServiceListActive(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	category := testCategory(t)
	categories.On("FindActive", mock.Anything).Return([]catalog.Category{*category}, nil)

	items, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "juices", items[0].Slug)
}

func TestCategoryServiceListOrdersBySortOrder(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	categories.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.OrderBy == "sort_order" && f.OrderDir == "asc"
	})).Return([]catalog.Category{}, nil)

	items, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
	categories.AssertExpectations(t)
}

func TestCategoryServiceDeleteNotFound(t *testing.T) {
	categories := new(mockCategoryRepository)
	svc := NewCategoryService(categories)

	id := uuid.New()
	categories.On("Delete", mock.Anything, id).Return(shared.ErrNotFound)

	err := svc.Delete(context.Background(), id)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATEGORY_NOT_FOUND", domainErr.Code)
}
