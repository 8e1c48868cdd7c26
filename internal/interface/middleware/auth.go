package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/pkg/helpers"
	"github.com/musemarket/musemarket-api/pkg/response"
)

// SessionLookup reads the stored session of a user.
type SessionLookup interface {
	Get(ctx context.Context, userID string) (map[string]string, error)
}

// Auth validates the access token and, when sessions are tracked, requires
// the token's session id to be the user's current one. It sets userID and
// role in the Gin context on success.
func Auth(sessions SessionLookup, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid access token", err.Error())
			return
		}

		if sessions != nil {
			data, err := sessions.Get(c.Request.Context(), claims.UserID)
			if err != nil || len(data) == 0 {
				response.Abort(c, http.StatusUnauthorized, "session not found", nil)
				return
			}
			if data["sid"] != claims.SessionID {
				response.Abort(c, http.StatusUnauthorized, "session expired", nil)
				return
			}
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole lets the request through only for the given roles. It must run
// after Auth.
func RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(roles, Role(c)) {
			response.Abort(c, http.StatusForbidden, "access denied", nil)
			return
		}
		c.Next()
	}
}
