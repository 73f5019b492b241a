package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/enrollhub/backend/internal/domain/entity"
	"github.com/enrollhub/backend/pkg/helpers"
	"github.com/enrollhub/backend/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey = "userID"
	CtxRoleKey   = "userRole"
)

// Auth validates the Authorization bearer token and injects the subject id
// and role into the Gin context. This is pure verification: the role is
// trusted from the token and never re-fetched from the account store, so a
// role change only takes effect at the next login.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the role decoded by Auth is in the
// allowed set. Must run after Auth.
func RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.Role(c.GetString(CtxRoleKey))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Error[any](c, http.StatusForbidden, "access denied: insufficient role", nil)
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
