package application

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) ExistsAdmin(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockArtworkRepo struct{ mock.Mock }

func (m *MockArtworkRepo) Create(ctx context.Context, a *entity.Artwork) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockArtworkRepo) GetByID(ctx context.Context, id string) (*entity.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Artwork), args.Error(1)
}

func (m *MockArtworkRepo) list(args mock.Arguments) ([]entity.Artwork, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Artwork), args.Error(1)
}

func (m *MockArtworkRepo) ListAll(ctx context.Context) ([]entity.Artwork, error) {
	return m.list(m.Called(ctx))
}

func (m *MockArtworkRepo) ListBySeller(ctx context.Context, sellerID string) ([]entity.Artwork, error) {
	return m.list(m.Called(ctx, sellerID))
}

func (m *MockArtworkRepo) ListByIDs(ctx context.Context, ids []string) ([]entity.Artwork, error) {
	return m.list(m.Called(ctx, ids))
}

func (m *MockArtworkRepo) UpdateOwned(ctx context.Context, a *entity.Artwork) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockArtworkRepo) DeleteOwned(ctx context.Context, id, sellerID string) error {
	return m.Called(ctx, id, sellerID).Error(0)
}

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) CreatePaid(ctx context.Context, o *entity.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepo) ListByBuyer(ctx context.Context, buyerID string) ([]entity.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

type MockSessions struct{ mock.Mock }

func (m *MockSessions) Save(ctx context.Context, userID string, fields map[string]any, ttl time.Duration) error {
	return m.Called(ctx, userID, fields, ttl).Error(0)
}

func (m *MockSessions) Get(ctx context.Context, userID string) (map[string]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSessions) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockJobs struct{ mock.Mock }

func (m *MockJobs) PublishJSON(ctx context.Context, body any) error {
	return m.Called(ctx, body).Error(0)
}

type MockSearcher struct{ mock.Mock }

func (m *MockSearcher) Put(ctx context.Context, a entity.Artwork) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockSearcher) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSearcher) SearchIDs(ctx context.Context, q string, size int) ([]string, error) {
	args := m.Called(ctx, q, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPayments struct{ mock.Mock }

func (m *MockPayments) Verify(ctx context.Context, token string, amount float64) (string, error) {
	args := m.Called(ctx, token, amount)
	return args.String(0), args.Error(1)
}

// MockImages records what was saved.
type MockImages struct {
	mock.Mock
	saved []byte
}

func (m *MockImages) Save(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.saved = b
	args := m.Called(ctx, objectPath, contentType)
	return args.String(0), args.Error(1)
}
