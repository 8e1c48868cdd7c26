package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	handlers "github.com/musemarket/musemarket-api/internal/interface/http"
	"github.com/musemarket/musemarket-api/internal/interface/middleware"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

// ArtworkModule serves public browsing under /artworks and the seller
// workspace under /seller.
type ArtworkModule struct {
	Handler *handlers.ArtworkHandler
	Auth    *handlers.AuthHandler
	Guard
}

func NewArtworkModule(h *handlers.ArtworkHandler, auth *handlers.AuthHandler, jwt *helpers.JWTManager, sessions middleware.SessionLookup, rdb *redis.Client) *ArtworkModule {
	return &ArtworkModule{Handler: h, Auth: auth, Guard: Guard{JWT: jwt, Sessions: sessions, RDB: rdb}}
}

func (m *ArtworkModule) Register(rg *gin.RouterGroup) {
	browse := middleware.RateLimit(m.RDB, 300, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/artworks/explore", browse, m.Handler.Explore)
	rg.GET("/artworks/:id", browse, m.Handler.Get)

	seller := rg.Group("/seller")
	m.protect(seller, 120, entity.RoleSeller)
	{
		seller.GET("/profile", m.Auth.Profile)
		seller.POST("/artworks", m.Handler.Create)
		seller.GET("/artworks", m.Handler.ListMine)
		seller.PUT("/artworks/:id", m.Handler.Update)
		seller.DELETE("/artworks/:id", m.Handler.Delete)
	}
}
