package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindActive(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *mockCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func testProduct(t *testing.T) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("Amla Juice", "amla-juice", valueobject.NewMoneyINR(decimal.NewFromInt(249)))
	require.NoError(t, err)
	product.ClearDomainEvents()
	return product
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestProductServiceCreate(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := NewProductService(products, categories)

	products.On("ExistsBySlug", mock.Anything, "amla-juice").Return(false, nil)
	products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateProductRequest{
		Name:        "Amla Juice",
		Description: "Cold pressed",
		Price:       decimal.NewFromInt(249),
		MRP:         decimal.NewFromInt(299),
		Weight:      "500ml",
		Images:      []string{"amla-1.jpg"},
		Stock:       intPtr(40),
	})

	require.NoError(t, err)
	assert.Equal(t, "Amla Juice", resp.Name)
	assert.Equal(t, "amla-juice", resp.Slug)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(249)))
	assert.True(t, resp.MRP.Equal(decimal.NewFromInt(299)))
	assert.Equal(t, 40, resp.Stock)
	assert.Equal(t, "active", resp.Status)
	products.AssertExpectations(t)
}

func TestProductServiceCreateDerivesSlug(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	products.On("ExistsBySlug", mock.Anything, "tulsi-drops-30ml").Return(false, nil)
	products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateProductRequest{
		Name:  "Tulsi Drops 30ml",
		Price: decimal.NewFromInt(99),
	})

	require.NoError(t, err)
	assert.Equal(t, "tulsi-drops-30ml", resp.Slug)
}

func TestProductServiceCreateDuplicateSlug(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	products.On("ExistsBySlug", mock.Anything, "amla-juice").Return(true, nil)

	_, err := svc.Create(context.Background(), CreateProductRequest{
		Name:  "Amla Juice",
		Price: decimal.NewFromInt(249),
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductServiceCreateResolvesCategories(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := NewProductService(products, categories)

	category, err := catalog.NewCategory("Juices", "juices")
	require.NoError(t, err)

	products.On("ExistsBySlug", mock.Anything, "amla-juice").Return(false, nil)
	categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateProductRequest{
		Name:        "Amla Juice",
		Price:       decimal.NewFromInt(249),
		CategoryIDs: []uuid.UUID{category.ID},
	})

	require.NoError(t, err)
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "juices", resp.Categories[0].Slug)
}

func TestProductServiceCreateUnknownCategory(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := NewProductService(products, categories)

	missing := uuid.New()
	products.On("ExistsBySlug", mock.Anything, "amla-juice").Return(false, nil)
	categories.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

	_, err := svc.Create(context.Background(), CreateProductRequest{
		Name:        "Amla Juice",
		Price:       decimal.NewFromInt(249),
		CategoryIDs: []uuid.UUID{missing},
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATEGORY_NOT_FOUND", domainErr.Code)
}

func TestProductServiceUpdatePartial(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	product := testProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	products.On("Save", mock.Anything, product).Return(nil)

	resp, err := svc.Update(context.Background(), product.ID, UpdateProductRequest{
		Description: strPtr("Now with jaggery"),
		Stock:       intPtr(12),
	})

	require.NoError(t, err)
	assert.Equal(t, "Amla Juice", resp.Name)
	assert.Equal(t, "Now with jaggery", resp.Description)
	assert.Equal(t, 12, resp.Stock)
	products.AssertExpectations(t)
}

func TestProductServiceUpdateSlugConflict(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	product := testProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	products.On("ExistsBySlug", mock.Anything, "taken-slug").Return(true, nil)

	_, err := svc.Update(context.Background(), product.ID, UpdateProductRequest{
		Slug: strPtr("taken-slug"),
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductServiceUpdateStatus(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	product := testProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	products.On("Save", mock.Anything, product).Return(nil)

	resp, err := svc.Update(context.Background(), product.ID, UpdateProductRequest{
		Status: strPtr("inactive"),
	})

	require.NoError(t, err)
	assert.Equal(t, "inactive", resp.Status)
	assert.False(t, product.IsActive())
}

func TestProductServiceUpdateNotFound(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	id := uuid.New()
	products.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), id, UpdateProductRequest{Name: strPtr("x")})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
}

func TestProductServiceGetBySlug(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	product := testProduct(t)
	products.On("FindBySlug", mock.Anything, "amla-juice").Return(product, nil)

	resp, err := svc.GetBySlug(context.Background(), "amla-juice")

	require.NoError(t, err)
	assert.Equal(t, product.ID, resp.ID)
}

func TestProductServiceGetBySlugInactiveHidden(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	product := testProduct(t)
	require.NoError(t, product.Deactivate())
	products.On("FindBySlug", mock.Anything, "amla-juice").Return(product, nil)

	_, err := svc.GetBySlug(context.Background(), "amla-juice")

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
}

func TestProductServiceListActive(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	product := testProduct(t)
	products.On("FindActive", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 12 && f.Search == "amla"
	})).Return([]catalog.Product{*product}, nil)

	page, err := svc.ListActive(context.Background(), ProductListFilter{
		Search:   "amla",
		Page:     2,
		PageSize: 12,
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "amla-juice", page.Items[0].Slug)
	products.AssertExpectations(t)
}

func TestProductServiceListActiveByCategory(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := NewProductService(products, categories)

	category, err := catalog.NewCategory("Juices", "juices")
	require.NoError(t, err)
	product := testProduct(t)

	categories.On("FindBySlug", mock.Anything, "juices").Return(category, nil)
	products.On("FindByCategory", mock.Anything, category.ID, mock.Anything).Return([]catalog.Product{*product}, nil)

	page, err := svc.ListActive(context.Background(), ProductListFilter{Category: "juices"})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	products.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything)
}

func TestProductServiceListActiveUnknownCategory(t *testing.T) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := NewProductService(products, categories)

	categories.On("FindBySlug", mock.Anything, "nope").Return(nil, shared.ErrNotFound)

	_, err := svc.ListActive(context.Background(), ProductListFilter{Category: "nope"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATEGORY_NOT_FOUND", domainErr.Code)
}

func TestProductServiceList(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	product := testProduct(t)
	products.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.Product{*product}, nil)
	products.On("Count", mock.Anything, mock.Anything).Return(int64(7), nil)

	page, err := svc.List(context.Background(), ProductListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(7), page.Total)
	require.Len(t, page.Items, 1)
}

func TestProductServiceDeleteNotFound(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, new(mockCategoryRepository))

	id := uuid.New()
	products.On("Delete", mock.Anything, id).Return(shared.ErrNotFound)

	err := svc.Delete(context.Background(), id)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
}
