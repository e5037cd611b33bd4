package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cake_orders/internal/model"
	"cake_orders/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeAuthService resolves one hard-coded token
type fakeAuthService struct {
	token string
	user  *model.User
	err   error
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	panic("not used")
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	panic("not used")
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if token != f.token {
		return nil, service.ErrUnauthorized
	}
	return f.user, nil
}

func setupRouter(auth service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware(auth)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString(AuthUserKey),
			"role":     c.GetString(AuthRoleKey),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestJWTAuthMiddleware_NoHeader(t *testing.T) {
	router := setupRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestJWTAuthMiddleware_BadHeaderFormat(t *testing.T) {
	router := setupRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupRouter(&fakeAuthService{token: "good"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestJWTAuthMiddleware_StoreError(t *testing.T) {
	router := setupRouter(&fakeAuthService{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	router := setupRouter(&fakeAuthService{
		token: "good",
		user:  &model.User{Username: "alice", Role: model.RoleUser},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"role":"user"`)
}

func TestAdminMiddleware_WrongRole(t *testing.T) {
	router := setupRouter(&fakeAuthService{
		token: "good",
		user:  &model.User{Username: "alice", Role: model.RoleUser},
	}, AdminMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminMiddleware_Admin(t *testing.T) {
	router := setupRouter(&fakeAuthService{
		token: "good",
		user:  &model.User{Username: "boss", Role: model.RoleAdmin},
	}, AdminMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
