package repository

import (
	"context"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

// DashboardSource is the read side consumed by the dashboard aggregator.
type DashboardSource interface {
	CountUsersByRole(ctx context.Context, role entity.Role) (int64, error)
	CountArtworks(ctx context.Context) (int64, error)
	// ListPaidOrderFacts returns every Paid order joined to its buyer and
	// artwork, oldest first.
	ListPaidOrderFacts(ctx context.Context) ([]entity.PaidOrderFact, error)
	// ListArtworkCategories returns the label of every artwork in insertion
	// order; unlabeled artworks yield "".
	ListArtworkCategories(ctx context.Context) ([]string, error)
}
