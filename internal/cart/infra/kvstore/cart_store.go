package kvstore

import (
	"github.com/farmconnect/marketplace/internal/cart/domain"
	"github.com/farmconnect/marketplace/pkg/kvstore"
)

const cartKey = "fc_cart_v2"

type CartStore struct {
	store *kvstore.Store
}

func NewCartStore(store *kvstore.Store) *CartStore {
	return &CartStore{store: store}
}

func (r *CartStore) Load() (domain.Cart, bool) {
	var cart domain.Cart
	if !r.store.Load(cartKey, &cart) {
		return domain.Cart{}, false
	}
	return cart, true
}

func (r *CartStore) Save(cart domain.Cart) error {
	return r.store.Save(cartKey, cart)
}
