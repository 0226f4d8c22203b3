package adapter

import (
	catalogapp "github.com/farmconnect/marketplace/internal/catalog/app"
	catalogdomain "github.com/farmconnect/marketplace/internal/catalog/domain"
	"github.com/farmconnect/marketplace/internal/order/app"
)

// CatalogWriter adapts the catalog service to the order engine's
// stock-decrement and review write-through port.
type CatalogWriter struct {
	catalog *catalogapp.Service
}

func NewCatalogWriter(catalog *catalogapp.Service) *CatalogWriter {
	return &CatalogWriter{catalog: catalog}
}

func (a *CatalogWriter) DecrementStock(productID string, qty int) error {
	return a.catalog.DecrementStock(productID, qty)
}

func (a *CatalogWriter) AddReview(productID string, review app.ProductReview) error {
	return a.catalog.AddReview(productID, catalogdomain.Review{
		Rating:   review.Rating,
		Text:     review.Text,
		Reviewer: review.Reviewer,
	})
}
