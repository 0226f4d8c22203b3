package app

import "github.com/farmconnect/marketplace/internal/catalog/domain"

// ProductStore persists the whole catalog as one blob. Load reports
// false when nothing usable is stored; Save failures are logged by the
// service and never roll back in-memory state.
type ProductStore interface {
	Load() ([]domain.Product, bool)
	Save(products []domain.Product) error
}
