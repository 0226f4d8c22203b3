package kvstore

import (
	"github.com/farmconnect/marketplace/internal/order/domain"
	"github.com/farmconnect/marketplace/pkg/kvstore"
)

// Orders are stored newest-first and not re-sorted on load.
const ordersKey = "fc_orders_v2"

type OrderStore struct {
	store *kvstore.Store
}

func NewOrderStore(store *kvstore.Store) *OrderStore {
	return &OrderStore{store: store}
}

func (r *OrderStore) Load() ([]domain.Order, bool) {
	var orders []domain.Order
	if !r.store.Load(ordersKey, &orders) {
		return nil, false
	}
	return orders, true
}

func (r *OrderStore) Save(orders []domain.Order) error {
	return r.store.Save(ordersKey, orders)
}
