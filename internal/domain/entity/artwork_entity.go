package entity

import "time"

type ArtworkStatus string

const (
	ArtworkAvailable ArtworkStatus = "Available"
	ArtworkSold      ArtworkStatus = "Sold"
)

func (s ArtworkStatus) Valid() bool {
	return s == ArtworkAvailable || s == ArtworkSold
}

// Artwork is a listing owned by a seller.
type Artwork struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Category    string
	Status      ArtworkStatus
	ImageURL    string
	SellerID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
