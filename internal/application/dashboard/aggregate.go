package dashboard

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

const (
	// TrailingMonths bounds salesByMonth.
	TrailingMonths = 6
	// TopSellingLimit caps topSellingArtworks.
	TopSellingLimit = 5
	// UncategorizedLabel replaces an empty or blank artwork category.
	UncategorizedLabel = "Uncategorized"
)

// Snapshot is everything one report is computed from. Callers must not
// mutate it while Compute runs.
type Snapshot struct {
	TotalSellers  int64
	TotalBuyers   int64
	TotalArtworks int64
	PaidOrders    []entity.PaidOrderFact
	Categories    []string
}

// Compute builds the report from a snapshot. It is a pure function of its
// inputs: the same snapshot and instant always give the same report.
//
// Grouped results keep first-visit order among equal counts, so ties in
// topBuyer, artworksByCategory and topSellingArtworks follow the order in
// which the storage layer returned rows. That order is not guaranteed by the
// storage layer and callers must not rely on it.
func Compute(s Snapshot, now time.Time) entity.DashboardReport {
	paid := paidOnly(s.PaidOrders)
	r := entity.DashboardReport{
		TotalSellers:       s.TotalSellers,
		TotalBuyers:        s.TotalBuyers,
		TotalArtworks:      s.TotalArtworks,
		TotalSales:         int64(len(paid)),
		SalesByMonth:       []entity.MonthlySales{},
		ArtworksByCategory: []entity.CategoryCount{},
		TopSellingArtworks: []entity.TopSellingEntry{},
	}
	for _, o := range paid {
		r.TotalRevenue += o.Amount
	}
	r.TopBuyer = topBuyer(paid)
	r.SalesByMonth = salesByMonth(paid, now)
	r.ArtworksByCategory = artworksByCategory(s.Categories)
	r.TopSellingArtworks = topSelling(paid)
	return r
}

// paidOnly drops any order that is not Paid. Storage already filters, but a
// Pending or Failed row must never count as a sale.
func paidOnly(orders []entity.PaidOrderFact) []entity.PaidOrderFact {
	out := make([]entity.PaidOrderFact, 0, len(orders))
	for _, o := range orders {
		if o.Status == entity.PaymentPaid {
			out = append(out, o)
		}
	}
	return out
}

type buyerTotals struct {
	name      string
	purchases int64
	spent     float64
}

func topBuyer(orders []entity.PaidOrderFact) *entity.TopBuyer {
	idx := make(map[string]int)
	var groups []buyerTotals
	for _, o := range orders {
		i, ok := idx[o.BuyerID]
		if !ok {
			i = len(groups)
			idx[o.BuyerID] = i
			groups = append(groups, buyerTotals{name: o.BuyerFullName})
		}
		groups[i].purchases++
		groups[i].spent += o.Amount
	}
	if len(groups) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(groups); i++ {
		if groups[i].purchases > groups[best].purchases {
			best = i
		}
	}
	g := groups[best]
	return &entity.TopBuyer{Name: g.name, Purchases: g.purchases, TotalSpent: g.spent}
}

type yearMonth struct {
	year  int
	month time.Month
}

// WindowStart is the inclusive lower bound of the trailing window. Month
// arithmetic normalizes overflowing days the way time.AddDate does, so
// 31 August minus six months is 3 March (or 2 March in leap years).
func WindowStart(now time.Time) time.Time {
	return now.UTC().AddDate(0, -TrailingMonths, 0)
}

func salesByMonth(orders []entity.PaidOrderFact, now time.Time) []entity.MonthlySales {
	start := WindowStart(now)
	buckets := make(map[yearMonth]*entity.MonthlySales)
	var keys []yearMonth
	for _, o := range orders {
		at := o.CreatedAt.UTC()
		if at.Before(start) {
			continue
		}
		k := yearMonth{year: at.Year(), month: at.Month()}
		b, ok := buckets[k]
		if !ok {
			b = &entity.MonthlySales{Month: fmt.Sprintf("%04d-%02d", k.year, int(k.month))}
			buckets[k] = b
			keys = append(keys, k)
		}
		b.Sales++
		b.Revenue += o.Amount
	}
	slices.SortFunc(keys, func(a, b yearMonth) int {
		if a.year != b.year {
			return a.year - b.year
		}
		return int(a.month) - int(b.month)
	})
	out := make([]entity.MonthlySales, 0, len(keys))
	for _, k := range keys {
		out = append(out, *buckets[k])
	}
	return out
}

func artworksByCategory(categories []string) []entity.CategoryCount {
	idx := make(map[string]int)
	out := make([]entity.CategoryCount, 0)
	for _, c := range categories {
		if strings.TrimSpace(c) == "" {
			c = UncategorizedLabel
		}
		i, ok := idx[c]
		if !ok {
			i = len(out)
			idx[c] = i
			out = append(out, entity.CategoryCount{Category: c})
		}
		out[i].Count++
	}
	slices.SortStableFunc(out, func(a, b entity.CategoryCount) int {
		return compareDesc(a.Count, b.Count)
	})
	return out
}

type artworkSales struct {
	id    string
	title string
	sales int64
}

func topSelling(orders []entity.PaidOrderFact) []entity.TopSellingEntry {
	idx := make(map[string]int)
	var groups []artworkSales
	for _, o := range orders {
		i, ok := idx[o.ArtworkID]
		if !ok {
			i = len(groups)
			idx[o.ArtworkID] = i
			groups = append(groups, artworkSales{id: o.ArtworkID, title: o.ArtworkTitle})
		}
		groups[i].sales++
	}
	slices.SortStableFunc(groups, func(a, b artworkSales) int {
		return compareDesc(a.sales, b.sales)
	})
	if len(groups) > TopSellingLimit {
		groups = groups[:TopSellingLimit]
	}
	out := make([]entity.TopSellingEntry, 0, len(groups))
	for _, g := range groups {
		out = append(out, entity.TopSellingEntry{Title: g.title, Sales: g.sales})
	}
	return out
}

func compareDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
