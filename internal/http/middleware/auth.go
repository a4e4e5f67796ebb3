package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// Authorize validates the bearer token and injects the authenticated
// identity into the request context. There is no process-wide session
// state; every request carries its own identity.
func Authorize(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		id, ok := claims["user_id"].(float64)
		if !ok || id <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(userIDKey, int64(id))
		c.Set(userRoleKey, role)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by Authorize.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CurrentRole returns the authenticated role, empty when anonymous.
func CurrentRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}

// IsAdmin is a convenience over CurrentRole.
func IsAdmin(c *gin.Context) bool {
	return strings.EqualFold(CurrentRole(c), "admin")
}
