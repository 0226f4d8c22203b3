package app

import (
	"github.com/farmconnect/marketplace/internal/order/domain"
	"github.com/shopspring/decimal"
)

// ForUser returns the orders placed by the given buyer email, newest
// first. Exact match.
func (s *Service) ForUser(email string) []domain.Order {
	return s.filter(func(o domain.Order) bool {
		return o.User.Email == email
	})
}

// All returns the full history, newest first.
func (s *Service) All() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}

// ForSeller returns every order containing at least one of the
// seller's lines, mixed-seller orders included.
func (s *Service) ForSeller(sellerName string) []domain.Order {
	return s.filter(func(o domain.Order) bool {
		for _, it := range o.Items {
			if it.Seller == sellerName {
				return true
			}
		}
		return false
	})
}

func (s *Service) ByID(orderID string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(orderID)
	if i < 0 {
		return domain.Order{}, ErrNotFound
	}
	return s.orders[i], nil
}

// StatusStats counts orders per status.
func (s *Service) StatusStats() map[domain.Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := make(map[domain.Status]int)
	for _, o := range s.orders {
		stats[o.Status]++
	}
	return stats
}

// TotalRevenue sums order totals, skipping cancelled orders.
func (s *Service) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, o := range s.All() {
		if o.Status == domain.StatusCancelled {
			continue
		}
		total = total.Add(parseMoney(o.Total))
	}
	return total
}

// TotalSoldBySeller counts units of the seller's lines across
// non-cancelled orders.
func (s *Service) TotalSoldBySeller(sellerName string) int {
	sold := 0
	for _, o := range s.All() {
		if o.Status == domain.StatusCancelled {
			continue
		}
		for _, it := range o.Items {
			if it.Seller == sellerName {
				sold += it.Qty
			}
		}
	}
	return sold
}

// AverageOrderValue is the mean total over non-cancelled orders,
// rounded to two decimals. Zero when there are none.
func (s *Service) AverageOrderValue() decimal.Decimal {
	total := decimal.Zero
	active := 0
	for _, o := range s.All() {
		if o.Status == domain.StatusCancelled {
			continue
		}
		total = total.Add(parseMoney(o.Total))
		active++
	}
	if active == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(active))).Round(2)
}

func (s *Service) filter(keep func(domain.Order) bool) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, 0)
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// parseMoney treats malformed stored totals as zero.
func parseMoney(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
