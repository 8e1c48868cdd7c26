package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	repo "github.com/musemarket/musemarket-api/internal/domain/repository"
	"github.com/musemarket/musemarket-api/internal/infrastructure/payment"
	"github.com/musemarket/musemarket-api/pkg/mailer"
	"github.com/musemarket/musemarket-api/pkg/mailer/templates"
)

type orderFixture struct {
	orders   *MockOrderRepo
	artworks *MockArtworkRepo
	users    *MockUserRepo
	payments *MockPayments
	search   *MockSearcher
	jobs     *MockJobs
	svc      *OrderService
}

func newOrderFixture() orderFixture {
	f := orderFixture{
		orders:   new(MockOrderRepo),
		artworks: new(MockArtworkRepo),
		users:    new(MockUserRepo),
		payments: new(MockPayments),
		search:   new(MockSearcher),
		jobs:     new(MockJobs),
	}
	f.svc = NewOrderService(f.orders, f.artworks, f.users, f.payments, f.search, f.jobs, testConfig(), quietLogger())
	return f
}

func orderInput() PlaceOrderInput {
	return PlaceOrderInput{
		ArtworkID:       "a1",
		BuyerName:       "Asha Rai",
		ShippingAddress: "Kathmandu",
		ContactNumber:   "9812345678",
		PaymentToken:    "tok_1",
	}
}

func availableArtwork() *entity.Artwork {
	return &entity.Artwork{ID: "a1", Title: "Dawn", Price: 1500, Status: entity.ArtworkAvailable, SellerID: "s1"}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newOrderFixture()
		f.artworks.On("GetByID", mock.Anything, "a1").Return(availableArtwork(), nil)
		f.payments.On("Verify", mock.Anything, "tok_1", 1500.0).Return("idx_9", nil)
		f.orders.On("CreatePaid", mock.Anything, mock.AnythingOfType("*entity.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*entity.Order)
				o.ID = "o1"
				o.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
			}).
			Return(nil)
		f.search.On("Put", mock.Anything, mock.MatchedBy(func(a entity.Artwork) bool {
			return a.ID == "a1" && a.Status == entity.ArtworkSold
		})).Return(nil)
		f.users.On("GetByID", mock.Anything, "b1").Return(&entity.User{ID: "b1", Username: "asha", Email: "asha@example.com"}, nil)
		f.jobs.On("PublishJSON", mock.Anything, mock.MatchedBy(func(j mailer.EmailJob) bool {
			return j.Template == templates.OrderConfirmation && j.To == "asha@example.com" && j.Data["OrderID"] == "o1"
		})).Return(nil)

		o, err := f.svc.PlaceOrder(context.Background(), "b1", orderInput())

		require.NoError(t, err)
		assert.Equal(t, "o1", o.ID)
		assert.Equal(t, entity.PaymentPaid, o.PaymentStatus)
		assert.Equal(t, "idx_9", o.TransactionID)
		assert.Equal(t, 1500.0, o.Amount)
		assert.Equal(t, "Dawn", o.ArtworkTitle)
		f.search.AssertExpectations(t)
		f.jobs.AssertExpectations(t)
	})

	t.Run("ArtworkMissing", func(t *testing.T) {
		f := newOrderFixture()
		f.artworks.On("GetByID", mock.Anything, "a1").Return(nil, repo.ErrNotFound)
		_, err := f.svc.PlaceOrder(context.Background(), "b1", orderInput())
		assert.ErrorIs(t, err, ErrArtworkNotFound)
		f.payments.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AlreadySold", func(t *testing.T) {
		f := newOrderFixture()
		a := availableArtwork()
		a.Status = entity.ArtworkSold
		f.artworks.On("GetByID", mock.Anything, "a1").Return(a, nil)
		_, err := f.svc.PlaceOrder(context.Background(), "b1", orderInput())
		assert.ErrorIs(t, err, ErrArtworkUnavailable)
		f.payments.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PaymentDeclinedWritesNothing", func(t *testing.T) {
		f := newOrderFixture()
		f.artworks.On("GetByID", mock.Anything, "a1").Return(availableArtwork(), nil)
		f.payments.On("Verify", mock.Anything, "tok_1", 1500.0).Return("", payment.ErrDeclined)

		_, err := f.svc.PlaceOrder(context.Background(), "b1", orderInput())

		assert.ErrorIs(t, err, ErrPaymentFailed)
		f.orders.AssertNotCalled(t, "CreatePaid", mock.Anything, mock.Anything)
		f.jobs.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything)
	})

	t.Run("ProviderDown", func(t *testing.T) {
		f := newOrderFixture()
		f.artworks.On("GetByID", mock.Anything, "a1").Return(availableArtwork(), nil)
		f.payments.On("Verify", mock.Anything, mock.Anything, mock.Anything).
			Return("", fmt.Errorf("%w: timeout", payment.ErrUnavailable))

		_, err := f.svc.PlaceOrder(context.Background(), "b1", orderInput())

		assert.ErrorIs(t, err, ErrPaymentUnavailable)
		f.orders.AssertNotCalled(t, "CreatePaid", mock.Anything, mock.Anything)
	})

	t.Run("SoldDuringCheckout", func(t *testing.T) {
		f := newOrderFixture()
		f.artworks.On("GetByID", mock.Anything, "a1").Return(availableArtwork(), nil)
		f.payments.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return("idx_9", nil)
		f.orders.On("CreatePaid", mock.Anything, mock.Anything).Return(repo.ErrArtworkUnavailable)

		_, err := f.svc.PlaceOrder(context.Background(), "b1", orderInput())
		assert.ErrorIs(t, err, ErrArtworkUnavailable)
	})

	t.Run("TransactionReused", func(t *testing.T) {
		f := newOrderFixture()
		f.artworks.On("GetByID", mock.Anything, "a1").Return(availableArtwork(), nil)
		f.payments.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return("idx_9", nil)
		f.orders.On("CreatePaid", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

		_, err := f.svc.PlaceOrder(context.Background(), "b1", orderInput())
		assert.ErrorIs(t, err, ErrPaymentReused)
	})

	t.Run("MailDisabled", func(t *testing.T) {
		f := newOrderFixture()
		f.svc.Config.MailSendEnabled = false
		f.svc.Search = nil
		f.artworks.On("GetByID", mock.Anything, "a1").Return(availableArtwork(), nil)
		f.payments.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return("idx_9", nil)
		f.orders.On("CreatePaid", mock.Anything, mock.Anything).Return(nil)

		_, err := f.svc.PlaceOrder(context.Background(), "b1", orderInput())

		require.NoError(t, err)
		f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		f.jobs.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything)
	})
}

func TestOrderService_ListMyOrders(t *testing.T) {
	f := newOrderFixture()
	f.orders.On("ListByBuyer", mock.Anything, "b1").Return([]entity.Order{{ID: "o1"}}, nil)
	f.orders.On("ListByBuyer", mock.Anything, "b2").Return(nil, errors.New("db down"))

	got, err := f.svc.ListMyOrders(context.Background(), "b1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.svc.ListMyOrders(context.Background(), "b2")
	assert.Error(t, err)
}
