package handlers

import (
	"context"

	"github.com/musemarket/musemarket-api/internal/application"
	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

// The handlers depend on these narrow views of the application services.

type AuthUseCase interface {
	Signup(ctx context.Context, in application.SignupInput) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, application.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (application.TokenPair, *entity.User, error)
	Logout(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
}

type ArtworkUseCase interface {
	Create(ctx context.Context, sellerID string, in application.CreateArtworkInput) (*entity.Artwork, error)
	Get(ctx context.Context, id string) (*entity.Artwork, error)
	ListMine(ctx context.Context, sellerID string) ([]entity.Artwork, error)
	Explore(ctx context.Context, q string) ([]entity.Artwork, error)
	Update(ctx context.Context, sellerID, id string, in application.UpdateArtworkInput) (*entity.Artwork, error)
	Delete(ctx context.Context, sellerID, id string) error
}

type OrderUseCase interface {
	PlaceOrder(ctx context.Context, buyerID string, in application.PlaceOrderInput) (*entity.Order, error)
	ListMyOrders(ctx context.Context, buyerID string) ([]entity.Order, error)
}

type DashboardUseCase interface {
	ComputeDashboardReport(ctx context.Context) (*entity.DashboardReport, error)
}
