package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/musemarket/musemarket-api/internal/interface/http"
	"github.com/musemarket/musemarket-api/internal/interface/middleware"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

// AuthModule serves /auth: signup, signin and refresh are public; logout and
// profile need a valid session.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Guard
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, sessions middleware.SessionLookup, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Guard: Guard{JWT: jwt, Sessions: sessions, RDB: rdb}}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.RDB, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(m.RDB, 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/signin", signinLimiter, m.Handler.Signin)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/auth")
	m.protect(auth, 120)
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.Profile)
	}
}
