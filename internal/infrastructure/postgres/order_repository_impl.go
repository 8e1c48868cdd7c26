package postgres

import (
	"context"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/internal/domain/repository"
)

type OrderRepository struct {
	pool DB
}

func NewOrderRepository(pool DB) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// CreatePaid marks the artwork Sold and inserts the order in one transaction.
// The conditional update doubles as a row lock, so two buyers racing for the
// same artwork cannot both succeed.
func (r *OrderRepository) CreatePaid(ctx context.Context, o *entity.Order) error {
	if !validID(o.ArtworkID) {
		return repository.ErrArtworkUnavailable
	}
	o.PaymentStatus = entity.PaymentPaid

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	// no-op once committed
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE artworks SET status = 'Sold', updated_at = now()
		WHERE id = $1 AND status = 'Available'
	`, o.ArtworkID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrArtworkUnavailable
	}
	var txID *string
	if o.TransactionID != "" {
		txID = &o.TransactionID
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (buyer_id, buyer_name, shipping_address, contact_number, artwork_id, amount, payment_status, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, o.BuyerID, o.BuyerName, o.ShippingAddress, o.ContactNumber, o.ArtworkID, o.Amount,
		string(o.PaymentStatus), txID).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return mapWriteErr(err)
	}
	return tx.Commit(ctx)
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]entity.Order, error) {
	if !validID(buyerID) {
		return []entity.Order{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.buyer_id, o.buyer_name, o.shipping_address, o.contact_number,
		       o.artwork_id, a.title, o.amount::float8, o.payment_status,
		       COALESCE(o.transaction_id, ''), o.created_at
		FROM orders o
		JOIN artworks a ON a.id = o.artwork_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC, o.id
	`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.BuyerName, &o.ShippingAddress, &o.ContactNumber,
			&o.ArtworkID, &o.ArtworkTitle, &o.Amount, &status, &o.TransactionID, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.PaymentStatus = entity.PaymentStatus(status)
		out = append(out, o)
	}
	return out, rows.Err()
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
