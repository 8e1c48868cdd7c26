package templates

import (
	"strconv"
	"time"

	"github.com/musemarket/musemarket-api/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithUsername(u string) Option { return func(d *EmailData) { d.Username = u } }
func WithRole(r string) Option     { return func(d *EmailData) { d.Role = r } }

// OrderDetails is what the confirmation email lists.
type OrderDetails struct {
	OrderID         string
	ArtworkTitle    string
	Amount          float64
	ShippingAddress string
	TransactionID   string
}

func WithOrder(o OrderDetails) Option {
	return func(d *EmailData) {
		d.OrderID = o.OrderID
		d.ArtworkTitle = o.ArtworkTitle
		d.Amount = FormatAmount(o.Amount)
		d.ShippingAddress = o.ShippingAddress
		d.TransactionID = o.TransactionID
	}
}

// FormatAmount renders a price the way the storefront shows it ("Rs. 1500",
// "Rs. 99.5").
func FormatAmount(v float64) string {
	return "Rs. " + strconv.FormatFloat(v, 'f', -1, 64)
}

// NewBaseEmailData fills the company fields from config, then applies options.
func NewBaseEmailData(cfg *config.Config, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:  name,
		Email: email,

		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		AppName:        cfg.AppName,
		LogoURL:        cfg.LogoURL,
		SupportURL:     cfg.SupportURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewOrderConfirmationData(cfg *config.Config, name, email string, order OrderDetails, opts ...Option) map[string]any {
	opts = append([]Option{WithOrder(order)}, opts...)
	return ToMap(NewBaseEmailData(cfg, name, email, opts...))
}

func NewWelcomeData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, name, email, opts...))
}
