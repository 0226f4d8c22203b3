package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/farmconnect/marketplace/internal/cart/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// fallbackStockLimit caps cart quantity when a product arrives without
// a known stock figure (Stock == 0 means unknown, not sold out).
const fallbackStockLimit = 999

// ProductInfo is what Add snapshots into the cart. The caller reads it
// from the catalog at add time.
type ProductInfo struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	SellerName string
	Image      string
	Stock      int
}

// Service owns the session's single cart.
type Service struct {
	mu    sync.Mutex
	store CartStore
	log   *slog.Logger
	cart  domain.Cart
}

func NewService(store CartStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{store: store, log: log, cart: domain.Empty()}
	if cart, ok := store.Load(); ok {
		if cart.Items == nil {
			cart.Items = []domain.CartItem{}
		}
		s.cart = cart
	}
	return s
}

// Add puts qty units of the product in the cart. Re-adding an existing
// product increments its line instead of duplicating it, and the
// combined quantity is validated against the product's stock on every
// call, not just the first.
func (s *Service) Add(p ProductInfo, qty int) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidProduct
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}

	limit := p.Stock
	if limit == 0 {
		limit = fallbackStockLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(p.ID)
	have := 0
	if i >= 0 {
		have = s.cart.Items[i].Qty
	}
	if have+qty > limit {
		return fmt.Errorf("only %d available: %w", limit-have, ErrInsufficientStock)
	}

	if i >= 0 {
		s.cart.Items[i].Qty += qty
	} else {
		s.cart.Items = append(s.cart.Items, domain.CartItem{
			CartItemID: p.ID + "-" + uuid.NewString()[:8],
			ProductID:  p.ID,
			Name:       p.Name,
			Price:      p.Price,
			SellerName: p.SellerName,
			Image:      p.Image,
			Qty:        qty,
		})
	}
	s.recompute()
	return nil
}

// Remove drops the line matching either the product id or the cart
// item id. Unknown keys are a no-op.
func (s *Service) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Items[:0]
	for _, it := range s.cart.Items {
		if it.ProductID == key || it.CartItemID == key {
			continue
		}
		items = append(items, it)
	}
	s.cart.Items = items
	s.recompute()
}

// SetQty clamps to a minimum of 1; dropping a line is Remove's job,
// never a side effect of a zero quantity.
func (s *Service) SetQty(key string, qty int) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == key || s.cart.Items[i].CartItemID == key {
			s.cart.Items[i].Qty = qty
		}
	}
	s.recompute()
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = domain.Empty()
	s.persist()
}

func (s *Service) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart.Items...)
}

func (s *Service) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total
}

func (s *Service) FormattedTotal() string {
	return s.Total().StringFixed(2)
}

// ItemCount sums quantities across lines.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, it := range s.cart.Items {
		n += it.Qty
	}
	return n
}

func (s *Service) DistinctItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart.Items)
}

// index must be called with the lock held.
func (s *Service) index(productID string) int {
	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// recompute must be called with the lock held.
func (s *Service) recompute() {
	s.cart.Total = domain.TotalOf(s.cart.Items)
	s.persist()
}

func (s *Service) persist() {
	if err := s.store.Save(s.cart); err != nil {
		s.log.Error("cart persist failed", "err", err)
	}
}
