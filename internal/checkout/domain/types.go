package domain

import "github.com/shopspring/decimal"

// Coupon is a named flat-percentage discount.
type Coupon struct {
	Code     string `json:"code"`
	Discount int    `json:"discount"`
}

// Summary is the checkout pricing breakdown:
// subtotal -> discount -> shipping -> tax -> total.
type Summary struct {
	Subtotal           decimal.Decimal
	DiscountPercent    int
	DiscountAmount     decimal.Decimal
	PriceAfterDiscount decimal.Decimal
	ShippingCost       decimal.Decimal
	Tax                decimal.Decimal
	Total              decimal.Decimal
	ItemCount          int
	DistinctItems      int
}
