package app

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarizePipeline(t *testing.T) {
	// subtotal 600 at 10%: discount 60, after 540, free shipping
	// (540 > 500), tax 27, total 567.
	sum := Summarize(d("600"), 4, 2, 10)

	if !sum.DiscountAmount.Equal(d("60")) {
		t.Fatalf("discount = %s, want 60", sum.DiscountAmount)
	}
	if !sum.PriceAfterDiscount.Equal(d("540")) {
		t.Fatalf("afterDiscount = %s, want 540", sum.PriceAfterDiscount)
	}
	if !sum.ShippingCost.IsZero() {
		t.Fatalf("shipping = %s, want 0", sum.ShippingCost)
	}
	if !sum.Tax.Equal(d("27")) {
		t.Fatalf("tax = %s, want 27", sum.Tax)
	}
	if !sum.Total.Equal(d("567")) {
		t.Fatalf("total = %s, want 567", sum.Total)
	}
}

func TestSummarizeFreeShippingBoundary(t *testing.T) {
	t.Run("exactly 500 still pays shipping", func(t *testing.T) {
		sum := Summarize(d("500"), 1, 1, 0)
		if !sum.ShippingCost.Equal(d("50")) {
			t.Fatalf("shipping = %s, want 50", sum.ShippingCost)
		}
	})

	t.Run("500.01 ships free", func(t *testing.T) {
		sum := Summarize(d("500.01"), 1, 1, 0)
		if !sum.ShippingCost.IsZero() {
			t.Fatalf("shipping = %s, want 0", sum.ShippingCost)
		}
	})

	t.Run("discount can push below the threshold", func(t *testing.T) {
		// 550 at 10% -> 495, which is under 500 again.
		sum := Summarize(d("550"), 1, 1, 10)
		if !sum.ShippingCost.Equal(d("50")) {
			t.Fatalf("shipping = %s, want 50", sum.ShippingCost)
		}
	})
}

func TestSummarizeRoundsHalfUp(t *testing.T) {
	// 33.33 at 10% -> 3.333 rounds to 3.33; after 30.00, tax 1.50.
	sum := Summarize(d("33.33"), 1, 1, 10)
	if !sum.DiscountAmount.Equal(d("3.33")) {
		t.Fatalf("discount = %s, want 3.33", sum.DiscountAmount)
	}
	if !sum.Tax.Equal(d("1.50")) {
		t.Fatalf("tax = %s, want 1.50", sum.Tax)
	}

	// 10.10 at 5% tax -> 0.505 rounds up to 0.51.
	sum = Summarize(d("10.10"), 1, 1, 0)
	if !sum.Tax.Equal(d("0.51")) {
		t.Fatalf("tax = %s, want 0.51", sum.Tax)
	}
}

func TestSummarizeZeroSubtotal(t *testing.T) {
	sum := Summarize(decimal.Zero, 0, 0, 25)
	if !sum.Total.Equal(d("50")) {
		t.Fatalf("empty summary still carries flat shipping, total = %s", sum.Total)
	}
}

func TestLookupCoupon(t *testing.T) {
	t.Run("known codes, case-insensitive", func(t *testing.T) {
		for code, want := range map[string]int{
			"SAVE10":    10,
			"save20":    20,
			" Welcome ": 15,
			"farmfresh": 25,
		} {
			c, err := LookupCoupon(code)
			if err != nil {
				t.Fatalf("LookupCoupon(%q) failed: %v", code, err)
			}
			if c.Discount != want {
				t.Fatalf("LookupCoupon(%q) = %d%%, want %d%%", code, c.Discount, want)
			}
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := LookupCoupon("SAVE99"); !errors.Is(err, ErrInvalidCoupon) {
			t.Fatalf("expected ErrInvalidCoupon, got %v", err)
		}
	})

	t.Run("blank code", func(t *testing.T) {
		if _, err := LookupCoupon("   "); !errors.Is(err, ErrInvalidCoupon) {
			t.Fatalf("expected ErrInvalidCoupon, got %v", err)
		}
	})
}
