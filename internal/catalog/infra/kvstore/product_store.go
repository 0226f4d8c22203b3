package kvstore

import (
	"github.com/farmconnect/marketplace/internal/catalog/domain"
	"github.com/farmconnect/marketplace/pkg/kvstore"
)

// productsKey matches the original browser storage key so existing
// exported blobs stay readable.
const productsKey = "fc_products_v3"

type ProductStore struct {
	store *kvstore.Store
}

func NewProductStore(store *kvstore.Store) *ProductStore {
	return &ProductStore{store: store}
}

func (r *ProductStore) Load() ([]domain.Product, bool) {
	var products []domain.Product
	if !r.store.Load(productsKey, &products) {
		return nil, false
	}
	return products, true
}

func (r *ProductStore) Save(products []domain.Product) error {
	return r.store.Save(productsKey, products)
}
