package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

// Gin context keys set by Auth.
const (
	CtxUserIDKey = "userID"
	CtxRoleKey   = "role"
)

// accessToken reads "Authorization: Bearer <token>" first, then the
// access_token cookie.
func accessToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(helpers.AccessCookie); err == nil {
		return token
	}
	return ""
}

// UserID returns the authenticated caller id, or "".
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}

// Role returns the authenticated caller role, or "".
func Role(c *gin.Context) entity.Role {
	return entity.Role(c.GetString(CtxRoleKey))
}
