package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	handlers "github.com/musemarket/musemarket-api/internal/interface/http"
	"github.com/musemarket/musemarket-api/internal/interface/middleware"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	Guard
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager, sessions middleware.SessionLookup, rdb *redis.Client) *AdminModule {
	return &AdminModule{Handler: h, Guard: Guard{JWT: jwt, Sessions: sessions, RDB: rdb}}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	m.protect(admin, 120, entity.RoleAdmin)
	{
		admin.GET("/dashboard-stats", m.Handler.DashboardStats)
	}
}
