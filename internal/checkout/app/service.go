package app

import (
	"errors"
	"strings"

	"github.com/farmconnect/marketplace/internal/checkout/domain"
	"github.com/shopspring/decimal"
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// Pricing constants, in currency units and percent.
var (
	FreeShippingThreshold = decimal.NewFromInt(500)
	FlatShippingCost      = decimal.NewFromInt(50)
)

const TaxPercent = 5

// coupons is the fixed code -> percent table. Codes are matched
// case-insensitively.
var coupons = map[string]int{
	"SAVE10":    10,
	"SAVE20":    20,
	"WELCOME":   15,
	"FARMFRESH": 25,
}

// LookupCoupon resolves a code to its discount. Unknown or blank codes
// fail; applying a new coupon always replaces the previous one, there
// is no stacking to resolve here.
func LookupCoupon(code string) (domain.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	discount, ok := coupons[code]
	if !ok {
		return domain.Coupon{}, ErrInvalidCoupon
	}
	return domain.Coupon{Code: code, Discount: discount}, nil
}

// Summarize runs the pricing pipeline over a cart subtotal:
//
//	discount = round(subtotal * pct / 100, 2)
//	after    = subtotal - discount
//	shipping = 0 if after > threshold else flat rate
//	tax      = round(after * 5%, 2)
//	total    = after + shipping + tax
//
// Free shipping is strictly greater-than: an order landing exactly on
// the threshold still pays shipping.
func Summarize(subtotal decimal.Decimal, itemCount, distinctItems, discountPercent int) domain.Summary {
	hundred := decimal.NewFromInt(100)

	discountAmount := subtotal.
		Mul(decimal.NewFromInt(int64(discountPercent))).
		Div(hundred).
		Round(2)
	afterDiscount := subtotal.Sub(discountAmount)

	shipping := FlatShippingCost
	if afterDiscount.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := afterDiscount.
		Mul(decimal.NewFromInt(TaxPercent)).
		Div(hundred).
		Round(2)

	return domain.Summary{
		Subtotal:           subtotal,
		DiscountPercent:    discountPercent,
		DiscountAmount:     discountAmount,
		PriceAfterDiscount: afterDiscount,
		ShippingCost:       shipping,
		Tax:                tax,
		Total:              afterDiscount.Add(shipping).Add(tax),
		ItemCount:          itemCount,
		DistinctItems:      distinctItems,
	}
}
