package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	identityapp "github.com/happydigitalmarketings/priyam/internal/application/identity"
	"github.com/happydigitalmarketings/priyam/internal/domain/identity"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/auth"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/config"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/middleware"
)

// MockUserRepository implements identity.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func newAuthTestRouter(t *testing.T, users *MockUserRepository) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key",
		TokenExpiration: time.Hour,
		Issuer:          "priyam-test",
	})
	service := identityapp.NewAuthService(users, jwtService, zaptest.NewLogger(t))
	h := NewAuthHandler(service)

	engine := gin.New()
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)

	admin := engine.Group("/api/v1")
	admin.Use(middleware.JWTAuth(jwtService))
	h.RegisterAdminRoutes(admin)
	return engine, jwtService
}

func adminUser(t *testing.T) *identity.User {
	t.Helper()
	u, err := identity.NewUser("admin", "correct-horse-42")
	require.NoError(t, err)
	return u
}

func TestAuthHandlerLogin(t *testing.T) {
	users := new(MockUserRepository)
	user := adminUser(t)
	users.On("FindByUsername", mock.Anything, "admin").Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	engine, _ := newAuthTestRouter(t, users)

	body, _ := json.Marshal(gin.H{"username": "admin", "password": "correct-horse-42"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data identityapp.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "admin", resp.Data.User.Username)
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	user := adminUser(t)
	users.On("FindByUsername", mock.Anything, "admin").Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	engine, _ := newAuthTestRouter(t, users)

	body, _ := json.Marshal(gin.H{"username": "admin", "password": "wrong-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerLoginMissingFields(t *testing.T) {
	engine, _ := newAuthTestRouter(t, new(MockUserRepository))

	body, _ := json.Marshal(gin.H{"username": "admin"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerMe(t *testing.T) {
	users := new(MockUserRepository)
	user := adminUser(t)
	users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	engine, jwtService := newAuthTestRouter(t, users)

	token, err := jwtService.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.Value)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data identityapp.UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.Data.ID)
}

func TestAuthHandlerMeWithoutToken(t *testing.T) {
	engine, _ := newAuthTestRouter(t, new(MockUserRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerChangePassword(t *testing.T) {
	users := new(MockUserRepository)
	user := adminUser(t)
	users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	engine, jwtService := newAuthTestRouter(t, users)

	token, err := jwtService.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	body, _ := json.Marshal(gin.H{
		"old_password": "correct-horse-42",
		"new_password": "battery-staple-99",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/change-password", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token.Value)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, user.VerifyPassword("battery-staple-99"))
}

func TestAuthHandlerRegister(t *testing.T) {
	users := new(MockUserRepository)
	user := adminUser(t)
	users.On("ExistsByUsername", mock.Anything, "priya").Return(false, nil)
	users.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	engine, jwtService := newAuthTestRouter(t, users)
	token, err := jwtService.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	body, _ := json.Marshal(gin.H{
		"username": "priya",
		"password": "garden-of-herbs-7",
		"email":    "priya@priyamherbals.in",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token.Value)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data identityapp.UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "priya", resp.Data.Username)
	users.AssertExpectations(t)
}

func TestAuthHandlerRegisterWithoutToken(t *testing.T) {
	users := new(MockUserRepository)
	engine, _ := newAuthTestRouter(t, users)

	body, _ := json.Marshal(gin.H{"username": "priya", "password": "garden-of-herbs-7"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthHandlerRegisterDuplicateUsername(t *testing.T) {
	users := new(MockUserRepository)
	user := adminUser(t)
	users.On("ExistsByUsername", mock.Anything, "admin").Return(true, nil)

	engine, jwtService := newAuthTestRouter(t, users)
	token, err := jwtService.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	body, _ := json.Marshal(gin.H{"username": "admin", "password": "garden-of-herbs-7"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token.Value)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
