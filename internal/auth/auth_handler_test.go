package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-magang/internal/auth"
	autherrors "go-magang/internal/auth/errors"
	authMock "go-magang/internal/auth/mock"
	"go-magang/internal/user"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false, time.Hour)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("success sets cookie", func(t *testing.T) {
		reqBody := auth.LoginRequest{Email: "test@example.com", Password: "password123"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(auth.LoginResponse{Message: "Login berhasil", Token: "jwt-token", User: user.UserResponse{Email: reqBody.Email}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=jwt-token")
		assert.Contains(t, w.Body.String(), "jwt-token")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		reqBody := auth.LoginRequest{Email: "test@example.com", Password: "wrong"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Email atau password salah")
	})

	t.Run("bad body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false, time.Hour)
	router := setupAuthRouter()
	router.POST("/register", handler.Register)

	mockService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(auth.RegisterResponse{Message: "Registrasi berhasil", UserID: "u-1"}, nil)

	body := `{"full_name":"Ayu","email":"ayu@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Registrasi berhasil")
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false, time.Hour)
	router := setupAuthRouter()
	router.GET("/me", func(c *gin.Context) { c.Set("user_id", "u-1") }, handler.Me)

	mockService.EXPECT().GetMe(gomock.Any(), "u-1").Return(user.UserResponse{ID: "u-1", Role: "mentor"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"mentor"`)
}
