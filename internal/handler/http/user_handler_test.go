package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mikiasgoitom/QAForum/internal/handler/http"
	dto "github.com/mikiasgoitom/QAForum/internal/handler/http/dto"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/middleware"
	mocks "github.com/mikiasgoitom/QAForum/internal/handler/http/mocks"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/validator"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

// withUser stands in for the auth middleware.
func withUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, id)
		c.Next()
	}
}

func jsonRequest(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func setupRouter(h handler.UserHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.CreateUser)
	r.POST("/login", h.Login)
	r.GET("/me", withUser(7), h.GetCurrentUser)
	r.GET("/anonymous/me", h.GetCurrentUser)
	return r
}

func TestCreateUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))
	payload := dto.RegisterRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "Password123!",
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, "POST", "/register", payload))

	assert.Equal(t, http.StatusCreated, w.Code)
	var got dto.UserSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "newuser", got.Username)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestCreateUser_ValidationFail(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))
	payload := dto.RegisterRequest{
		Username: "   ",
		Email:    "not-an-email",
		Password: "short",
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, "POST", "/register", payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Username' failed on the 'notblank' tag")
	assert.Contains(t, w.Body.String(), "Field validation for 'Email' failed on the 'email' tag")
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'min' tag")
}

func TestCreateUser_Taken(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.RegisterErr = usecase.ErrUsernameTaken
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, "POST", "/register", dto.RegisterRequest{
		Username: "taken", Email: "t@example.com", Password: "Password123!",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUser_UsecaseValidation(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.RegisterErr = fmt.Errorf("%w: invalid username", usecase.ErrValidation)
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, "POST", "/register", dto.RegisterRequest{
		Username: "bad name", Email: "t@example.com", Password: "Password123!",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username")
}

func TestCreateUser_InternalError(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailCreateUser = true
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, "POST", "/register", dto.RegisterRequest{
		Username: "ok", Email: "t@example.com", Password: "Password123!",
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to register user"}`, w.Body.String())
}

func TestLogin(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, "POST", "/login", dto.LoginRequest{Username: "testuser", Password: "Password123!"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var got dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "mock_access_token", got.AccessToken)
	assert.Equal(t, uint(7), got.User.ID)
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailLogin = true
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, "POST", "/login", dto.LoginRequest{Username: "testuser", Password: "wrong-password"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestGetCurrentUser(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"testuser"`)
}

func TestGetCurrentUser_Unauthenticated(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/anonymous/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
