package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ciphersafe-be/internal/jwt"
)

// UserIDKey is the gin context key under which the authenticated user's id
// is stored for downstream handlers.
const UserIDKey = "user_id"

// AuthMiddleware verifies the Authorization bearer token and binds the
// authenticated user id to the request context. It is a pure gate: no
// persistence access, no side effects.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "No token, authorization denied",
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "No token, authorization denied",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Token is not valid",
			})
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user id set by AuthMiddleware.
// The second return is false when the middleware did not run.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
