package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockService struct{}

func (m *mockService) Enforce(req EnforceRequest) (bool, error) {
	return req.Role == RoleMentor && req.Resource == ResourceSchedule, nil
}

func (m *mockService) PermissionsFor(role string) ([]Permission, error) {
	return []Permission{{Resource: ResourceOffice, Action: ActionRead}}, nil
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(&mockService{})

	router := gin.New()
	router.POST("/rbac/enforce", handler.Enforce)

	t.Run("allowed", func(t *testing.T) {
		body, _ := json.Marshal(EnforceRequest{Role: RoleMentor, Resource: ResourceSchedule, Action: ActionRead})
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("missing fields", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"role":"mentor"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_MyPermissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(&mockService{})

	router := gin.New()
	router.GET("/rbac/permissions", func(c *gin.Context) {
		c.Set("role", RoleStudent)
		handler.MyPermissions(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/rbac/permissions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"mahasiswa"`)
}
