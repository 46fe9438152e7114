package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/happydigitalmarketings/priyam/internal/application/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/dto"
)

// MockCategoryRepository implements catalog.CategoryRepository for testing
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindActive(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func newProductTestRouter(products *MockProductRepository, categories *MockCategoryRepository) *gin.Engine {
	service := catalogapp.NewProductService(products, categories)
	h := NewProductHandler(service)

	engine := gin.New()
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	h.RegisterAdminRoutes(api)
	return engine
}

func TestProductHandlerListActive(t *testing.T) {
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	p := activeCartProduct(t)
	products.On("FindActive", mock.Anything, mock.Anything).Return([]catalog.Product{*p}, nil)
	products.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	engine := newProductTestRouter(products, categories)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?page=1&page_size=20", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                         `json:"success"`
		Data    []catalogapp.ProductResponse `json:"data"`
		Meta    *dto.Meta                    `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "amla-juice", resp.Data[0].Slug)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
}

func TestProductHandlerListActiveBadQuery(t *testing.T) {
	engine := newProductTestRouter(new(MockProductRepository), new(MockCategoryRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?page=0", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandlerGetBySlug(t *testing.T) {
	products := new(MockProductRepository)
	p := activeCartProduct(t)
	products.On("FindBySlug", mock.Anything, "amla-juice").Return(p, nil)

	engine := newProductTestRouter(products, new(MockCategoryRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/amla-juice", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data catalogapp.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, p.ID, resp.Data.ID)
}

func TestProductHandlerGetBySlugNotFound(t *testing.T) {
	products := new(MockProductRepository)
	products.On("FindBySlug", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

	engine := newProductTestRouter(products, new(MockCategoryRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/missing", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", resp.Error.Code)
}

func TestProductHandlerCreate(t *testing.T) {
	products := new(MockProductRepository)
	products.On("ExistsBySlug", mock.Anything, "tulsi-drops").Return(false, nil)
	products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	engine := newProductTestRouter(products, new(MockCategoryRepository))

	body, _ := json.Marshal(gin.H{
		"name":  "Tulsi Drops",
		"price": decimal.NewFromInt(199),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data catalogapp.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tulsi-drops", resp.Data.Slug)
}

func TestProductHandlerCreateDuplicateSlug(t *testing.T) {
	products := new(MockProductRepository)
	products.On("ExistsBySlug", mock.Anything, "amla-juice").Return(true, nil)

	engine := newProductTestRouter(products, new(MockCategoryRepository))

	body, _ := json.Marshal(gin.H{
		"name":  "Amla Juice",
		"price": decimal.NewFromInt(249),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProductHandlerCreateMissingPrice(t *testing.T) {
	engine := newProductTestRouter(new(MockProductRepository), new(MockCategoryRepository))

	body, _ := json.Marshal(gin.H{"name": "Amla Juice"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandlerDeleteInvalidID(t *testing.T) {
	engine := newProductTestRouter(new(MockProductRepository), new(MockCategoryRepository))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/not-a-uuid", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
