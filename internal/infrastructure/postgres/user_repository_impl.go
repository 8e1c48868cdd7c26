package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/internal/domain/repository"
)

type UserRepository struct {
	pool DB
}

func NewUserRepository(pool DB) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, full_name, phone, address, role, art_style, age, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	var artStyle *string
	var age *int32
	switch p := u.Profile.(type) {
	case entity.SellerProfile:
		artStyle = &p.ArtStyle
	case entity.BuyerProfile:
		a := int32(p.Age)
		age = &a
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, full_name, phone, address, role, art_style, age)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.PasswordHash, u.FullName, u.Phone, u.Address, string(u.Role), artStyle, age)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *UserRepository) ExistsAdmin(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND role = 'admin')`, username)
}

func (r *UserRepository) exists(ctx context.Context, q string, arg any) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, q, arg).Scan(&ok)
	return ok, err
}

func (r *UserRepository) getOne(ctx context.Context, q string, arg any) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var role string
	var artStyle *string
	var age *int32
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.Address,
		&role, &artStyle, &age, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	u.Profile = profileFor(u.Role, artStyle, age)
	return u, nil
}

func profileFor(role entity.Role, artStyle *string, age *int32) entity.Profile {
	switch role {
	case entity.RoleSeller:
		p := entity.SellerProfile{}
		if artStyle != nil {
			p.ArtStyle = *artStyle
		}
		return p
	case entity.RoleBuyer:
		p := entity.BuyerProfile{}
		if age != nil {
			p.Age = int(*age)
		}
		return p
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
