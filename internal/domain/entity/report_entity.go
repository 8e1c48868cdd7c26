package entity

import "time"

// PaidOrderFact is one paid order joined with the display fields the
// dashboard needs.
type PaidOrderFact struct {
	BuyerID       string
	BuyerFullName string
	ArtworkID     string
	ArtworkTitle  string
	Amount        float64
	Status        PaymentStatus
	CreatedAt     time.Time
}

// DashboardReport is the read-only admin analytics report. JSON names are
// consumed by the admin frontend as-is.
type DashboardReport struct {
	TotalSellers       int64             `json:"totalSellers"`
	TotalBuyers        int64             `json:"totalBuyers"`
	TotalArtworks      int64             `json:"totalArtworks"`
	TotalSales         int64             `json:"totalSales"`
	TotalRevenue       float64           `json:"totalRevenue"`
	TopBuyer           *TopBuyer         `json:"topBuyer"`
	SalesByMonth       []MonthlySales    `json:"salesByMonth"`
	ArtworksByCategory []CategoryCount   `json:"artworksByCategory"`
	TopSellingArtworks []TopSellingEntry `json:"topSellingArtworks"`
}

type TopBuyer struct {
	Name       string  `json:"name"`
	Purchases  int64   `json:"purchases"`
	TotalSpent float64 `json:"totalSpent"`
}

type MonthlySales struct {
	Month   string  `json:"month"`
	Sales   int64   `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type TopSellingEntry struct {
	Title string `json:"title"`
	Sales int64  `json:"sales"`
}
