package domain

import "github.com/shopspring/decimal"

// CartItem is a point-in-time snapshot of a product plus a quantity.
// Later edits to the product do not flow back into the cart.
type CartItem struct {
	CartItemID string          `json:"cartItemId"`
	ProductID  string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	SellerName string          `json:"sellerName"`
	Image      string          `json:"image,omitempty"`
	Qty        int             `json:"qty"`
}

// Cart holds at most one item per product id. Total is derived and
// recomputed after every mutation, never adjusted incrementally.
type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func Empty() Cart {
	return Cart{Items: []CartItem{}, Total: decimal.Zero}
}

func TotalOf(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total
}
