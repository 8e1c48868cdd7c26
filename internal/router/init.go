package router

import (
	"context"

	"github.com/musemarket/musemarket-api/internal/application"
	"github.com/musemarket/musemarket-api/internal/application/dashboard"
	"github.com/musemarket/musemarket-api/internal/container"
	"github.com/musemarket/musemarket-api/internal/infrastructure/payment"
	pginfra "github.com/musemarket/musemarket-api/internal/infrastructure/postgres"
	"github.com/musemarket/musemarket-api/internal/infrastructure/search"
	handlers "github.com/musemarket/musemarket-api/internal/interface/http"
	"github.com/musemarket/musemarket-api/internal/router/modules"
)

type appDeps struct {
	Auth     *handlers.AuthHandler
	Artworks *handlers.ArtworkHandler
	Orders   *handlers.OrderHandler
	Admin    *handlers.AdminHandler
}

func artworkSearcher() application.ArtworkSearcher {
	es := container.GetES()
	if es == nil {
		return nil
	}
	return search.NewArtworkIndex(es, container.GetConfig().ESArtworksIndex)
}

func buildDeps() appDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	artworks := pginfra.NewArtworkRepository(pool)
	orders := pginfra.NewOrderRepository(pool)
	idx := artworkSearcher()
	jobs := container.GetJobs()

	gateway := payment.New(cfg.PaymentMode, cfg.KhaltiBaseURL, cfg.KhaltiSecret,
		payment.WithLogger(logger), payment.WithTimeout(cfg.PaymentTimeout))

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetSessions(), jobs, cfg, logger)
	artworkSvc := application.NewArtworkService(artworks, container.GetImageStore(), idx, cfg.MaxUploadBytes, logger)
	orderSvc := application.NewOrderService(orders, artworks, users, gateway, idx, jobs, cfg, logger)
	dash := dashboard.NewService(pginfra.NewDashboardSource(pool), logger)

	return appDeps{
		Auth:     handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure),
		Artworks: handlers.NewArtworkHandler(artworkSvc, logger, cfg.MaxUploadBytes),
		Orders:   handlers.NewOrderHandler(orderSvc, logger),
		Admin:    handlers.NewAdminHandler(dash, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	deps := buildDeps()
	jwt := container.GetJWT()
	sessions := container.GetSessions()
	rdb := container.GetRedis()

	r.Add(modules.NewHealthModule(healthChecks()))
	r.Add(modules.NewAuthModule(deps.Auth, jwt, sessions, rdb))
	r.Add(modules.NewArtworkModule(deps.Artworks, deps.Auth, jwt, sessions, rdb))
	r.Add(modules.NewOrderModule(deps.Orders, jwt, sessions, rdb))
	r.Add(modules.NewAdminModule(deps.Admin, jwt, sessions, rdb))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
	if container.ServesLocalUploads() {
		r.Engine.Static(cfg.PublicUploadURL, cfg.UploadsDir)
	}
}

func healthChecks() map[string]modules.Pinger {
	checks := map[string]modules.Pinger{
		"postgres": func(ctx context.Context) error { return container.GetPGPool().Ping(ctx) },
	}
	if rdb := container.GetRedis(); rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return checks
}
