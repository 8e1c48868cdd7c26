package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/musemarket/musemarket-api/config"
	"github.com/musemarket/musemarket-api/internal/domain/entity"
	"github.com/musemarket/musemarket-api/internal/domain/repository"
	pginfra "github.com/musemarket/musemarket-api/internal/infrastructure/postgres"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

const demoPassword = "password123"

type demoArtwork struct {
	title, category string
	price           float64
	soldTo          string // buyer username, empty when still for sale
}

var sellers = []entity.User{
	{Username: "mira", FullName: "Mira Shrestha", Email: "mira@example.com", Phone: "9800000001", Address: "Patan", Role: entity.RoleSeller, Profile: entity.SellerProfile{ArtStyle: "Thangka"}},
	{Username: "kiran", FullName: "Kiran Rai", Email: "kiran@example.com", Phone: "9800000002", Address: "Pokhara", Role: entity.RoleSeller, Profile: entity.SellerProfile{ArtStyle: "Watercolor"}},
}

var buyers = []entity.User{
	{Username: "asha", FullName: "Asha Gurung", Email: "asha@example.com", Phone: "9800000003", Address: "Kathmandu", Role: entity.RoleBuyer, Profile: entity.BuyerProfile{Age: 24}},
	{Username: "bibek", FullName: "Bibek Thapa", Email: "bibek@example.com", Phone: "9800000004", Address: "Bhaktapur", Role: entity.RoleBuyer, Profile: entity.BuyerProfile{Age: 37}},
}

var catalog = map[string][]demoArtwork{
	"mira": {
		{title: "Green Tara", category: "Thangka", price: 18000, soldTo: "asha"},
		{title: "Wheel of Life", category: "Thangka", price: 25000},
	},
	"kiran": {
		{title: "Phewa at Dusk", category: "Landscape", price: 6500, soldTo: "bibek"},
		{title: "Monsoon Terraces", category: "Landscape", price: 7200, soldTo: "asha"},
		{title: "Untitled Study", category: "", price: 1200},
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	artworks := pginfra.NewArtworkRepository(pool)
	orders := pginfra.NewOrderRepository(pool)

	hash, err := helpers.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	byName := map[string]*entity.User{}
	for _, u := range append(append([]entity.User{}, sellers...), buyers...) {
		u.PasswordHash = hash
		saved, err := ensureUser(ctx, users, u)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.Username, err)
		}
		byName[u.Username] = saved
		fmt.Printf("seeded %s %s (id=%s password=%s)\n", saved.Role, saved.Username, saved.ID, demoPassword)
	}

	for seller, works := range catalog {
		sellerID := byName[seller].ID
		existing, err := artworks.ListBySeller(ctx, sellerID)
		if err != nil {
			log.Fatalf("failed to list artworks: %v", err)
		}
		if len(existing) > 0 {
			fmt.Printf("artworks for %s already seeded\n", seller)
			continue
		}
		for _, w := range works {
			a := &entity.Artwork{
				Title:       w.title,
				Description: "Demo listing by " + byName[seller].FullName,
				Price:       w.price,
				Category:    w.category,
				Status:      entity.ArtworkAvailable,
				SellerID:    sellerID,
			}
			if err := artworks.Create(ctx, a); err != nil {
				log.Fatalf("failed to seed artwork %q: %v", w.title, err)
			}
			if w.soldTo == "" {
				continue
			}
			buyer := byName[w.soldTo]
			o := &entity.Order{
				BuyerID:         buyer.ID,
				BuyerName:       buyer.FullName,
				ShippingAddress: buyer.Address,
				ContactNumber:   buyer.Phone,
				ArtworkID:       a.ID,
				Amount:          a.Price,
				TransactionID:   "seed-" + a.ID,
			}
			if err := orders.CreatePaid(ctx, o); err != nil {
				log.Fatalf("failed to seed order for %q: %v", w.title, err)
			}
		}
		fmt.Printf("seeded %d artworks for %s\n", len(works), seller)
	}
}

func ensureUser(ctx context.Context, users *pginfra.UserRepository, u entity.User) (*entity.User, error) {
	err := users.Create(ctx, &u)
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, err
	}
	return users.GetByUsername(ctx, u.Username)
}
