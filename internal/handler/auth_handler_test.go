package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cake_orders/internal/model"
	"cake_orders/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeAuthService drives the handler without touching the real service stack
type fakeAuthService struct {
	registerErr error
	loginUser   *model.User
	loginToken  string
	loginErr    error
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &model.User{ID: 1, Username: username, Role: model.RoleUser}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.loginUser, f.loginToken, f.loginErr
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	panic("not used")
}

func newAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(svc).RegisterAuthRoutes(&router.RouterGroup)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice","password":"pw1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registered successfully")
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{registerErr: service.ErrUserAlreadyExists})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice","password":"pw1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{
		loginUser:  &model.User{ID: 1, Username: "alice", Role: model.RoleUser},
		loginToken: "token123",
	})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"pw1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"token123"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	assert.Contains(t, rec.Body.String(), `"role":"user"`)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{loginErr: service.ErrInvalidCredentials})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}
