package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/config"
	"github.com/musemarket/musemarket-api/internal/domain/entity"
	repo "github.com/musemarket/musemarket-api/internal/domain/repository"
	"github.com/musemarket/musemarket-api/internal/infrastructure/payment"
	"github.com/musemarket/musemarket-api/pkg/helpers"
	"github.com/musemarket/musemarket-api/pkg/mailer"
	"github.com/musemarket/musemarket-api/pkg/mailer/templates"
)

var (
	ErrArtworkUnavailable = errors.New("artwork is not available")
	ErrPaymentFailed      = errors.New("payment verification failed")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
	ErrPaymentReused      = errors.New("payment already used for another order")
)

type OrderService struct {
	Orders   repo.OrderRepository
	Artworks repo.ArtworkRepository
	Users    repo.UserRepository
	Payments PaymentVerifier
	Search   ArtworkSearcher
	Jobs     JobPublisher
	Config   *config.Config
	Logger   *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, artworks repo.ArtworkRepository, users repo.UserRepository, payments PaymentVerifier, search ArtworkSearcher, jobs JobPublisher, cfg *config.Config, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Artworks: artworks, Users: users, Payments: payments, Search: search, Jobs: jobs, Config: cfg, Logger: logger}
}

type PlaceOrderInput struct {
	ArtworkID       string
	BuyerName       string
	ShippingAddress string
	ContactNumber   string
	PaymentToken    string
}

// PlaceOrder verifies the payment for the artwork's current price and only
// then records a Paid order, marking the artwork Sold in the same
// transaction. Nothing is written when verification fails.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerID string, in PlaceOrderInput) (*entity.Order, error) {
	a, err := s.Artworks.GetByID(ctx, in.ArtworkID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	if a.Status != entity.ArtworkAvailable {
		return nil, ErrArtworkUnavailable
	}

	log := s.logger().WithField("buyer_id", buyerID).WithField("artwork_id", a.ID)

	txID, err := s.Payments.Verify(ctx, in.PaymentToken, a.Price)
	if err != nil {
		helpers.PaymentFailures.Add(1)
		log.WithError(err).Warn("payment verification failed")
		if errors.Is(err, payment.ErrUnavailable) {
			return nil, ErrPaymentUnavailable
		}
		return nil, ErrPaymentFailed
	}

	o := &entity.Order{
		BuyerID:         buyerID,
		BuyerName:       strings.TrimSpace(in.BuyerName),
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		ContactNumber:   in.ContactNumber,
		ArtworkID:       a.ID,
		ArtworkTitle:    a.Title,
		Amount:          a.Price,
		PaymentStatus:   entity.PaymentPaid,
		TransactionID:   txID,
	}
	if err := s.Orders.CreatePaid(ctx, o); err != nil {
		// the payment went through but no order exists: needs a manual refund
		log.WithError(err).WithField("transaction_id", txID).Error("order not recorded after verified payment")
		switch {
		case errors.Is(err, repo.ErrArtworkUnavailable):
			return nil, ErrArtworkUnavailable
		case errors.Is(err, repo.ErrDuplicate):
			return nil, ErrPaymentReused
		}
		return nil, err
	}
	helpers.OrdersPlaced.Add(1)

	if s.Search != nil {
		sold := *a
		sold.Status = entity.ArtworkSold
		if err := s.Search.Put(ctx, sold); err != nil {
			log.WithError(err).Warn("es reindex after sale failed")
		}
	}
	s.sendConfirmation(ctx, o)
	return o, nil
}

func (s *OrderService) sendConfirmation(ctx context.Context, o *entity.Order) {
	if s.Config == nil || !s.Config.MailSendEnabled || s.Jobs == nil || s.Users == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, o.BuyerID)
	if err != nil {
		s.logger().WithError(err).WithField("order_id", o.ID).Warn("confirmation email skipped")
		return
	}
	data := templates.NewOrderConfirmationData(s.Config, o.BuyerName, u.Email, templates.OrderDetails{
		OrderID:         o.ID,
		ArtworkTitle:    o.ArtworkTitle,
		Amount:          o.Amount,
		ShippingAddress: o.ShippingAddress,
		TransactionID:   o.TransactionID,
	}, templates.WithUsername(u.Username), templates.WithTime(o.CreatedAt))
	enqueueEmail(ctx, s.Jobs, s.Logger, mailer.EmailJob{To: u.Email, Template: templates.OrderConfirmation, Data: data})
}

func (s *OrderService) ListMyOrders(ctx context.Context, buyerID string) ([]entity.Order, error) {
	return s.Orders.ListByBuyer(ctx, buyerID)
}

func (s *OrderService) logger() *logrus.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}
