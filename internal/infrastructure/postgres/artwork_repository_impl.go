package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/internal/domain/repository"
)

type ArtworkRepository struct {
	pool DB
}

func NewArtworkRepository(pool DB) *ArtworkRepository {
	return &ArtworkRepository{pool: pool}
}

const artworkColumns = `id, title, description, price::float8, category, status, image_url, seller_id, created_at, updated_at`

func (r *ArtworkRepository) Create(ctx context.Context, a *entity.Artwork) error {
	if a.Status == "" {
		a.Status = entity.ArtworkAvailable
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO artworks (title, description, price, category, status, image_url, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, a.Title, a.Description, a.Price, a.Category, string(a.Status), a.ImageURL, a.SellerID)
	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *ArtworkRepository) GetByID(ctx context.Context, id string) (*entity.Artwork, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	a, err := scanArtwork(r.pool.QueryRow(ctx, `SELECT `+artworkColumns+` FROM artworks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *ArtworkRepository) ListAll(ctx context.Context) ([]entity.Artwork, error) {
	return r.list(ctx, `SELECT `+artworkColumns+` FROM artworks ORDER BY created_at DESC, id`)
}

func (r *ArtworkRepository) ListBySeller(ctx context.Context, sellerID string) ([]entity.Artwork, error) {
	if !validID(sellerID) {
		return []entity.Artwork{}, nil
	}
	return r.list(ctx, `SELECT `+artworkColumns+` FROM artworks WHERE seller_id = $1 ORDER BY created_at DESC, id`, sellerID)
}

// ListByIDs returns the artworks among ids that still exist, in the order of ids.
func (r *ArtworkRepository) ListByIDs(ctx context.Context, ids []string) ([]entity.Artwork, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []entity.Artwork{}, nil
	}
	found, err := r.list(ctx, `SELECT `+artworkColumns+` FROM artworks WHERE id = ANY($1::uuid[])`, valid)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Artwork, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	out := make([]entity.Artwork, 0, len(found))
	for _, id := range valid {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *ArtworkRepository) UpdateOwned(ctx context.Context, a *entity.Artwork) error {
	if !validID(a.ID) {
		return repository.ErrNotFound
	}
	err := r.pool.QueryRow(ctx, `
		UPDATE artworks
		SET title = $1, description = $2, price = $3, category = $4, status = $5, updated_at = now()
		WHERE id = $6 AND seller_id = $7
		RETURNING updated_at
	`, a.Title, a.Description, a.Price, a.Category, string(a.Status), a.ID, a.SellerID).Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

func (r *ArtworkRepository) DeleteOwned(ctx context.Context, id, sellerID string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM artworks WHERE id = $1 AND seller_id = $2`, id, sellerID)
	if err != nil {
		return mapWriteErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ArtworkRepository) list(ctx context.Context, q string, args ...any) ([]entity.Artwork, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]entity.Artwork, 0)
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func scanArtwork(row pgx.Row) (*entity.Artwork, error) {
	a := &entity.Artwork{}
	var status string
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Price, &a.Category, &status,
		&a.ImageURL, &a.SellerID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = entity.ArtworkStatus(status)
	return a, nil
}

var _ repository.ArtworkRepository = (*ArtworkRepository)(nil)
