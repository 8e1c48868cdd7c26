package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/internal/interface/middleware"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

// Guard bundles what protected route groups need.
type Guard struct {
	JWT      *helpers.JWTManager
	Sessions middleware.SessionLookup
	RDB      *redis.Client
}

// protect adds auth, an optional role check and a per-user limiter to g.
func (gd Guard) protect(g *gin.RouterGroup, perMinute int, roles ...entity.Role) {
	g.Use(middleware.Auth(gd.Sessions, gd.JWT))
	if len(roles) > 0 {
		g.Use(middleware.RequireRole(roles...))
	}
	g.Use(middleware.RateLimit(gd.RDB, perMinute, time.Minute, middleware.KeyByUserID(), middleware.AllowRoles(string(entity.RoleAdmin))))
}
