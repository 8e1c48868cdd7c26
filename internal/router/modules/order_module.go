package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	handlers "github.com/musemarket/musemarket-api/internal/interface/http"
	"github.com/musemarket/musemarket-api/internal/interface/middleware"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

type OrderModule struct {
	Handler *handlers.OrderHandler
	Guard
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager, sessions middleware.SessionLookup, rdb *redis.Client) *OrderModule {
	return &OrderModule{Handler: h, Guard: Guard{JWT: jwt, Sessions: sessions, RDB: rdb}}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	// checkout talks to the payment provider, keep it tight
	m.protect(orders, 30, entity.RoleBuyer)
	{
		orders.POST("", m.Handler.Place)
		orders.GET("", m.Handler.ListMine)
	}
}
