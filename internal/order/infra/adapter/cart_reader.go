package adapter

import (
	cartapp "github.com/farmconnect/marketplace/internal/cart/app"
	"github.com/farmconnect/marketplace/internal/order/app"
)

// CartReader adapts the cart service to the order engine's port.
type CartReader struct {
	cart *cartapp.Service
}

func NewCartReader(cart *cartapp.Service) *CartReader {
	return &CartReader{cart: cart}
}

func (a *CartReader) Lines() []app.CartLine {
	items := a.cart.Items()
	lines := make([]app.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, app.CartLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Qty:       it.Qty,
			Seller:    it.SellerName,
			Image:     it.Image,
		})
	}
	return lines
}

func (a *CartReader) Clear() {
	a.cart.Clear()
}
