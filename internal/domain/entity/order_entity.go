package entity

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

// Order is a purchase record. Shipping fields are captured at checkout and do
// not follow later profile changes.
type Order struct {
	ID              string
	BuyerID         string
	BuyerName       string
	ShippingAddress string
	ContactNumber   string
	ArtworkID       string
	ArtworkTitle    string // read-only, filled by joins
	Amount          float64
	PaymentStatus   PaymentStatus
	TransactionID   string
	CreatedAt       time.Time
}
