package postgres

import (
	"context"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/internal/domain/repository"
)

// DashboardSource serves the aggregator's reads. Rows come back in insertion
// order so that tie-breaking in the aggregator follows first occurrence.
type DashboardSource struct {
	pool DB
}

func NewDashboardSource(pool DB) *DashboardSource {
	return &DashboardSource{pool: pool}
}

func (s *DashboardSource) CountUsersByRole(ctx context.Context, role entity.Role) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, string(role)).Scan(&n)
	return n, err
}

func (s *DashboardSource) CountArtworks(ctx context.Context) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM artworks`).Scan(&n)
	return n, err
}

func (s *DashboardSource) ListPaidOrderFacts(ctx context.Context) ([]entity.PaidOrderFact, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT o.buyer_id, u.full_name, o.artwork_id, a.title, o.amount::float8, o.payment_status, o.created_at
		FROM orders o
		JOIN users u ON u.id = o.buyer_id
		JOIN artworks a ON a.id = o.artwork_id
		WHERE o.payment_status = 'Paid'
		ORDER BY o.created_at, o.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.PaidOrderFact, 0)
	for rows.Next() {
		var f entity.PaidOrderFact
		var status string
		if err := rows.Scan(&f.BuyerID, &f.BuyerFullName, &f.ArtworkID, &f.ArtworkTitle, &f.Amount, &status, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Status = entity.PaymentStatus(status)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *DashboardSource) ListArtworkCategories(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT category FROM artworks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ repository.DashboardSource = (*DashboardSource)(nil)
