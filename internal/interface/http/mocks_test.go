package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/musemarket/musemarket-api/internal/application"
	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

type MockAuth struct{ mock.Mock }

func (m *MockAuth) Signup(ctx context.Context, in application.SignupInput) (*entity.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuth) Login(ctx context.Context, username, password string) (*entity.User, application.TokenPair, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, application.TokenPair{}, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(application.TokenPair), args.Error(2)
}

func (m *MockAuth) Refresh(ctx context.Context, refreshToken string) (application.TokenPair, *entity.User, error) {
	args := m.Called(ctx, refreshToken)
	u, _ := args.Get(1).(*entity.User)
	return args.Get(0).(application.TokenPair), u, args.Error(2)
}

func (m *MockAuth) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAuth) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockArtworks struct {
	mock.Mock
	uploaded []byte
}

func (m *MockArtworks) Create(ctx context.Context, sellerID string, in application.CreateArtworkInput) (*entity.Artwork, error) {
	if in.Image != nil && in.Image.Body != nil {
		m.uploaded, _ = io.ReadAll(in.Image.Body)
	}
	args := m.Called(ctx, sellerID, mock.Anything)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Artwork), args.Error(1)
}

func (m *MockArtworks) Get(ctx context.Context, id string) (*entity.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Artwork), args.Error(1)
}

func (m *MockArtworks) list(args mock.Arguments) ([]entity.Artwork, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Artwork), args.Error(1)
}

func (m *MockArtworks) ListMine(ctx context.Context, sellerID string) ([]entity.Artwork, error) {
	return m.list(m.Called(ctx, sellerID))
}

func (m *MockArtworks) Explore(ctx context.Context, q string) ([]entity.Artwork, error) {
	return m.list(m.Called(ctx, q))
}

func (m *MockArtworks) Update(ctx context.Context, sellerID, id string, in application.UpdateArtworkInput) (*entity.Artwork, error) {
	args := m.Called(ctx, sellerID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Artwork), args.Error(1)
}

func (m *MockArtworks) Delete(ctx context.Context, sellerID, id string) error {
	return m.Called(ctx, sellerID, id).Error(0)
}

type MockOrders struct{ mock.Mock }

func (m *MockOrders) PlaceOrder(ctx context.Context, buyerID string, in application.PlaceOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, buyerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrders) ListMyOrders(ctx context.Context, buyerID string) ([]entity.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

type MockDashboard struct{ mock.Mock }

func (m *MockDashboard) ComputeDashboardReport(ctx context.Context) (*entity.DashboardReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardReport), args.Error(1)
}
