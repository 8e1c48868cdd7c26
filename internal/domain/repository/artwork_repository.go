package repository

import (
	"context"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

// ArtworkRepository defines artwork persistence. Owner-scoped methods match on
// both id and seller so a non-owner sees the same result as a missing row.
type ArtworkRepository interface {
	Create(ctx context.Context, a *entity.Artwork) error
	GetByID(ctx context.Context, id string) (*entity.Artwork, error)
	ListAll(ctx context.Context) ([]entity.Artwork, error)
	ListBySeller(ctx context.Context, sellerID string) ([]entity.Artwork, error)
	ListByIDs(ctx context.Context, ids []string) ([]entity.Artwork, error)
	UpdateOwned(ctx context.Context, a *entity.Artwork) error
	DeleteOwned(ctx context.Context, id, sellerID string) error
}
