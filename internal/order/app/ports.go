package app

import (
	"github.com/farmconnect/marketplace/internal/order/domain"
	"github.com/shopspring/decimal"
)

type OrderStore interface {
	Load() ([]domain.Order, bool)
	Save(orders []domain.Order) error
}

// CartLine is the engine's view of one cart line; the adapter maps the
// cart context's own item type onto it.
type CartLine struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Qty       int
	Seller    string
	Image     string
}

// CartReader hands the engine the lines to snapshot and lets it clear
// the cart once the order is in.
type CartReader interface {
	Lines() []CartLine
	Clear()
}

// ProductReview mirrors the catalog's review input.
type ProductReview struct {
	Rating   int
	Text     string
	Reviewer string
}

// CatalogWriter is the engine's write surface into the catalog: stock
// decrements at placement and the canonical review store for
// write-through reviews.
type CatalogWriter interface {
	DecrementStock(productID string, qty int) error
	AddReview(productID string, review ProductReview) error
}
