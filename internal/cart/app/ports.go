package app

import "github.com/farmconnect/marketplace/internal/cart/domain"

type CartStore interface {
	Load() (domain.Cart, bool)
	Save(cart domain.Cart) error
}
