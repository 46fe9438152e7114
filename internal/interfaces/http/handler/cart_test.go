package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	cartapp "github.com/happydigitalmarketings/priyam/internal/application/cart"
	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/cartstore"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type stubPublisher struct{}

func (stubPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error { return nil }

func newCartTestRouter(t *testing.T, products *MockProductRepository) *gin.Engine {
	t.Helper()
	service := cartapp.NewService(
		cartstore.NewMemoryStore(),
		products,
		stubPublisher{},
		valueobject.NewMoneyINR(decimal.NewFromInt(50)),
		zaptest.NewLogger(t),
	)
	h := NewCartHandler(service, nil)

	engine := gin.New()
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine
}

func activeCartProduct(t *testing.T) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("Amla Juice", "amla-juice", valueobject.NewMoneyINR(decimal.NewFromInt(249)))
	require.NoError(t, err)
	return p
}

func TestCartHandlerGetMintsSession(t *testing.T) {
	products := new(MockProductRepository)
	engine := newCartTestRouter(t, products)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.CartSessionHeader))

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Items     []json.RawMessage `json:"items"`
			ItemCount int               `json:"item_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data.Items)
}

func TestCartHandlerAddItem(t *testing.T) {
	products := new(MockProductRepository)
	product := activeCartProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	engine := newCartTestRouter(t, products)
	session := uuid.NewString()

	body, _ := json.Marshal(gin.H{"product_id": product.ID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body))
	req.Header.Set(middleware.CartSessionHeader, session)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session, w.Header().Get(middleware.CartSessionHeader))

	var resp struct {
		Data cartapp.CartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, product.ID, resp.Data.Items[0].ProductID)
	assert.Equal(t, 1, resp.Data.ItemCount)
}

func TestCartHandlerAddUnknownProduct(t *testing.T) {
	products := new(MockProductRepository)
	products.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	engine := newCartTestRouter(t, products)

	body, _ := json.Marshal(gin.H{"product_id": uuid.New()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body))
	req.Header.Set(middleware.CartSessionHeader, uuid.NewString())
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandlerSetQuantityRemovesAtZero(t *testing.T) {
	products := new(MockProductRepository)
	product := activeCartProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	engine := newCartTestRouter(t, products)
	session := uuid.NewString()

	body, _ := json.Marshal(gin.H{"product_id": product.ID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body))
	req.Header.Set(middleware.CartSessionHeader, session)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body, _ = json.Marshal(gin.H{"qty": 0})
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/cart/items/%s", product.ID), bytes.NewReader(body))
	req.Header.Set(middleware.CartSessionHeader, session)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data cartapp.CartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)
}

func TestCartHandlerRemoveItem(t *testing.T) {
	products := new(MockProductRepository)
	product := activeCartProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	engine := newCartTestRouter(t, products)
	session := uuid.NewString()

	body, _ := json.Marshal(gin.H{"product_id": product.ID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body))
	req.Header.Set(middleware.CartSessionHeader, session)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/cart/items/%s", product.ID), nil)
	req.Header.Set(middleware.CartSessionHeader, session)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data cartapp.CartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)
}

func TestCartHandlerInvalidProductIDParam(t *testing.T) {
	products := new(MockProductRepository)
	engine := newCartTestRouter(t, products)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/not-a-uuid", nil)
	req.Header.Set(middleware.CartSessionHeader, uuid.NewString())
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
