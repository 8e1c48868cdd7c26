package handlers

import (
	"time"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	Role        string    `json:"role"`
	ArtStyle    string    `json:"artStyle,omitempty"`
	Age         int       `json:"age,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// toUserResponse never carries the password hash.
func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		PhoneNumber: u.Phone,
		Address:     u.Address,
		Role:        string(u.Role),
		ArtStyle:    u.ArtStyle(),
		Age:         u.Age(),
		CreatedAt:   u.CreatedAt,
	}
}

type artworkResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Label       string    `json:"label"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"imageUrl"`
	SellerID    string    `json:"sellerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toArtworkResponse(a *entity.Artwork) artworkResponse {
	return artworkResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Price:       a.Price,
		Label:       a.Category,
		Status:      string(a.Status),
		ImageURL:    a.ImageURL,
		SellerID:    a.SellerID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toArtworkList(in []entity.Artwork) []artworkResponse {
	out := make([]artworkResponse, 0, len(in))
	for i := range in {
		out = append(out, toArtworkResponse(&in[i]))
	}
	return out
}

type orderResponse struct {
	ID              string    `json:"id"`
	ArtworkID       string    `json:"artworkId"`
	ArtworkTitle    string    `json:"artworkTitle"`
	BuyerName       string    `json:"buyerName"`
	ShippingAddress string    `json:"shippingAddress"`
	ContactNumber   string    `json:"contactNumber"`
	Amount          float64   `json:"amount"`
	PaymentStatus   string    `json:"paymentStatus"`
	TransactionID   string    `json:"transactionId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toOrderResponse(o *entity.Order) orderResponse {
	return orderResponse{
		ID:              o.ID,
		ArtworkID:       o.ArtworkID,
		ArtworkTitle:    o.ArtworkTitle,
		BuyerName:       o.BuyerName,
		ShippingAddress: o.ShippingAddress,
		ContactNumber:   o.ContactNumber,
		Amount:          o.Amount,
		PaymentStatus:   string(o.PaymentStatus),
		TransactionID:   o.TransactionID,
		CreatedAt:       o.CreatedAt,
	}
}
