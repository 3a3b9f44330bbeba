package middleware

import (
	"errors"
	"strings"

	autherrors "go-magang/internal/auth/errors"
	"go-magang/internal/shared/apperror"
	"go-magang/internal/shared/contextutil"
	"go-magang/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}

// AuthMiddleware accepts a bearer token or the access_token cookie and sets
// user_id, email and role on the gin context. An empty secret rejects every token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}
		email, _ := claims["email"].(string)

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Set("role", role)

		ctx := contextutil.WithUser(c.Request.Context(), userID, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole is the coarse role gate used where no rbac resource fits.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		abortWith(c, autherrors.ErrForbidden)
	}
}
