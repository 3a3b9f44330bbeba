package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-magang/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
	})

	do := func(header, cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "access_token", Value: cookie})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	valid := signToken(t, jwt.MapClaims{
		"user_id": "u-1",
		"role":    rbac.RoleStudent,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	t.Run("bearer token", func(t *testing.T) {
		w := do("Bearer "+valid, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"mahasiswa"`)
	})

	t.Run("cookie token", func(t *testing.T) {
		w := do("", valid)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := do("", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token tidak ditemukan")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := signToken(t, jwt.MapClaims{
			"user_id": "u-1",
			"role":    rbac.RoleStudent,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		w := do("Bearer "+expired, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signature", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "u-1", "role": "mentor"})
		s, _ := token.SignedString([]byte("other"))
		w := do("Bearer "+s, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing role claim", func(t *testing.T) {
		w := do("Bearer "+signToken(t, jwt.MapClaims{"user_id": "u-1"}), "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthMiddleware_EmptySecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/me", AuthMiddleware(""), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("role"))
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"role":    rbac.RoleAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(""))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+s)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), rbac.RoleAdmin)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		c.Set("role", c.Query("role"))
	}, RequireRole(rbac.RoleMentor, rbac.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for role, want := range map[string]int{
		rbac.RoleMentor:  http.StatusNoContent,
		rbac.RoleAdmin:   http.StatusNoContent,
		rbac.RoleStudent: http.StatusForbidden,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x?role="+role, nil))
		assert.Equal(t, want, w.Code, role)
	}
}

type stubEnforcer struct {
	allowed bool
	err     error
}

func (s stubEnforcer) Enforce(req rbac.EnforceRequest) (bool, error) {
	return s.allowed, s.err
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(svc RBACService, role string) int {
		router := gin.New()
		router.GET("/x", func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
		}, RBACAuthorize(svc, rbac.ResourceOffice, rbac.ActionUpdate), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run(stubEnforcer{allowed: true}, rbac.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run(stubEnforcer{allowed: false}, rbac.RoleStudent))
	assert.Equal(t, http.StatusUnauthorized, run(stubEnforcer{allowed: true}, ""))
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/login", RateLimitByIP(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, httptest.NewRequest(http.MethodPost, "/login", nil))
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/x", RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "rid-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "rid-123", w.Body.String())
	assert.Equal(t, "rid-123", w.Header().Get("X-Request-ID"))

	t.Run("minted when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ttl := time.Hour
	cacheKey := "idemp:/attendance/clock-in:u-1:key-1"
	lockKey := cacheKey + ":lock"

	newRouter := func(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
		db, mock := redismock.NewClientMock()
		calls := 0
		router := gin.New()
		router.POST("/attendance/clock-in", func(c *gin.Context) {
			c.Set("user_id", "u-1")
		}, Idempotency(db, ttl), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return router, mock, &calls
	}

	post := func(router *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/attendance/clock-in", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("first request is stored", func(t *testing.T) {
		router, mock, calls := newRouter(t)
		payload, _ := json.Marshal(cachedResponse{Status: http.StatusOK, Body: `{"ok":true}`})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, payload, ttl).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed", func(t *testing.T) {
		router, mock, calls := newRouter(t)
		payload, _ := json.Marshal(cachedResponse{Status: http.StatusOK, Body: `{"ok":true}`})

		mock.ExpectGet(cacheKey).SetVal(string(payload))

		w := post(router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate", func(t *testing.T) {
		router, mock, calls := newRouter(t)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(false)

		w := post(router)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *calls)
	})
}
