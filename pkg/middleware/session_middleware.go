package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "vitalis/pkg/memcache"
	"vitalis/pkg/utils"
)

func SessionAuthMiddleware(sessions mem.SessionStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Signed expiry is not enough: logout revokes the session server-side.
		if !sessions.Valid(claims.ID) {
			utils.RespondError(c, http.StatusUnauthorized, "Session revoked or expired")
			c.Abort()
			return
		}

		c.Set("session_id", claims.ID)
		c.Set("Role", claims.Role)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("Role")

		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
