package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
	"github.com/vkosyk/course-catalog-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserNameKey = "userName"
	CtxUserRoleKey = "userRole"
)

// Session reads the session cookie and verifies signature and expiry.
// Any failure clears the client-held cookie and aborts with 401; the
// message never says which check failed. On success the subject id,
// name and role land in the Gin context.
func Session(jwt *helpers.JWTManager, cookies *helpers.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseSessionToken(token)
		if err != nil {
			cookies.Clear(c)
			response.Error[any](c, http.StatusUnauthorized, "session invalid or expired", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserNameKey, claims.Name)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole enforces an exact role match on a route already behind
// Session. Admin is not a superset of other roles; the check is
// exhaustive over the closed role set.
func RequireRole(required entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(CtxUserRoleKey)
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		got, ok := role.(entity.Role)
		if !ok || !got.Valid() {
			response.Error[any](c, http.StatusForbidden, "insufficient permissions", nil)
			c.Abort()
			return
		}
		switch got {
		case required:
			c.Next()
		case entity.RoleUser, entity.RoleAdmin:
			response.Error[any](c, http.StatusForbidden, "insufficient permissions", nil)
			c.Abort()
		default:
			response.Error[any](c, http.StatusForbidden, "insufficient permissions", nil)
			c.Abort()
		}
	}
}

// UserID returns the authenticated subject id set by Session.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
