package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP bypasses the limit for loopback and private-range clients.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		if parsed == nil {
			return false
		}
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}

// AllowRoles bypasses the limit for authenticated callers with one of roles.
func AllowRoles(roles ...string) AllowFunc {
	return func(c *gin.Context) bool {
		r := c.GetString(CtxRoleKey)
		for _, want := range roles {
			if strings.EqualFold(r, want) {
				return true
			}
		}
		return false
	}
}
