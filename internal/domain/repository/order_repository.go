package repository

import (
	"context"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

type OrderRepository interface {
	// CreatePaid inserts the order and flips its artwork to Sold atomically.
	// It fails with ErrArtworkUnavailable when the artwork was sold meanwhile.
	CreatePaid(ctx context.Context, o *entity.Order) error
	ListByBuyer(ctx context.Context, buyerID string) ([]entity.Order, error)
}
