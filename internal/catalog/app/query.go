package app

import (
	"sort"
	"strings"

	"github.com/farmconnect/marketplace/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// Queries are pure reads over a copy of the catalog taken under the
// lock, so callers can hold results across later mutations.

func (s *Service) All() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *Service) GetBySeller(sellerEmail string) []domain.Product {
	return s.filter(func(p domain.Product) bool {
		return p.SellerEmail == sellerEmail
	})
}

// Search matches a case-insensitive substring against name,
// description, category and seller name. Empty terms return everything.
func (s *Service) Search(term string) []domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.All()
	}
	return s.filter(func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.SellerName), term)
	})
}

// FilterByCategory treats "all" (and empty) as a passthrough.
func (s *Service) FilterByCategory(category string) []domain.Product {
	if category == "" || category == "all" {
		return s.All()
	}
	return s.filter(func(p domain.Product) bool {
		return p.Category == category
	})
}

// FilterByPriceRange is inclusive on both ends.
func (s *Service) FilterByPriceRange(min, max decimal.Decimal) []domain.Product {
	return s.filter(func(p domain.Product) bool {
		return p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max)
	})
}

func (s *Service) InStock() []domain.Product {
	return s.filter(func(p domain.Product) bool { return p.Stock > 0 })
}

func (s *Service) OutOfStock() []domain.Product {
	return s.filter(func(p domain.Product) bool { return p.Stock <= 0 })
}

func (s *Service) TopRated(limit int) []domain.Product {
	return s.topBy(limit, func(a, b domain.Product) bool {
		return a.Rating.GreaterThan(b.Rating)
	})
}

func (s *Service) BestSelling(limit int) []domain.Product {
	return s.topBy(limit, func(a, b domain.Product) bool {
		return a.SoldCount > b.SoldCount
	})
}

// SellerStats aggregates a seller's catalog: product count, units
// sold, revenue as Σ price·soldCount, and mean product rating rounded
// to one decimal.
type SellerStats struct {
	TotalProducts int
	TotalSold     int
	TotalRevenue  decimal.Decimal
	AverageRating decimal.Decimal
}

func (s *Service) SellerStats(sellerEmail string) SellerStats {
	products := s.GetBySeller(sellerEmail)

	stats := SellerStats{
		TotalProducts: len(products),
		TotalRevenue:  decimal.Zero,
		AverageRating: decimal.Zero,
	}
	ratingSum := decimal.Zero
	for _, p := range products {
		stats.TotalSold += p.SoldCount
		stats.TotalRevenue = stats.TotalRevenue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.SoldCount))))
		ratingSum = ratingSum.Add(p.Rating)
	}
	if len(products) > 0 {
		stats.AverageRating = ratingSum.Div(decimal.NewFromInt(int64(len(products)))).Round(1)
	}
	return stats
}

// TotalRevenue is Σ price·soldCount over the whole catalog.
func (s *Service) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.All() {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.SoldCount))))
	}
	return total
}

func (s *Service) TotalSold() int {
	sold := 0
	for _, p := range s.All() {
		sold += p.SoldCount
	}
	return sold
}

func (s *Service) AveragePrice() decimal.Decimal {
	products := s.All()
	if len(products) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(products)))).Round(2)
}

func (s *Service) filter(keep func(domain.Product) bool) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) topBy(limit int, less func(a, b domain.Product) bool) []domain.Product {
	if limit <= 0 {
		limit = 5
	}
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
