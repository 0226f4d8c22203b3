package app

import (
	"testing"

	"github.com/farmconnect/marketplace/internal/order/domain"
	"github.com/shopspring/decimal"
)

// multiSellerEngine places three orders: one mixed-seller order for
// the buyer, one single-seller order for another buyer, and one
// cancelled order.
func multiSellerEngine(t *testing.T) *Service {
	t.Helper()
	svc, cart, _ := newEngine(
		tomatoLine(100, 2), // Farm Fresh Valley
		CartLine{ProductID: "9", Name: "Honey", Price: decimal.NewFromInt(180), Qty: 1, Seller: "Bee Keepers"},
	)
	placeOne(t, svc) // mixed order, subtotal 380 -> total 380+50+19=449.00

	cart.lines = []CartLine{{ProductID: "2", Name: "Bananas", Price: decimal.NewFromInt(30), Qty: 3, Seller: "Fruit Paradise"}}
	if _, err := svc.PlaceOrder(domain.User{Email: "other@farmconnect.com", Name: "Rohit"}, shipping, ""); err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	cart.lines = []CartLine{tomatoLine(200, 1)}
	cancelled := placeOne(t, svc) // total 200+50+10=260.00
	if err := svc.Cancel(cancelled.ID, "test"); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	return svc
}

func TestForUser(t *testing.T) {
	svc := multiSellerEngine(t)

	mine := svc.ForUser("buyer@farmconnect.com")
	if len(mine) != 2 {
		t.Fatalf("ForUser = %d orders, want 2", len(mine))
	}
	for _, o := range mine {
		if o.User.Email != "buyer@farmconnect.com" {
			t.Fatalf("foreign order leaked: %s", o.User.Email)
		}
	}
	if len(svc.ForUser("nobody@farmconnect.com")) != 0 {
		t.Fatal("unknown user should have no orders")
	}
}

func TestForSellerIncludesMixedOrders(t *testing.T) {
	svc := multiSellerEngine(t)

	bee := svc.ForSeller("Bee Keepers")
	if len(bee) != 1 {
		t.Fatalf("ForSeller(Bee Keepers) = %d, want 1", len(bee))
	}
	// The mixed order counts for both its sellers.
	farm := svc.ForSeller("Farm Fresh Valley")
	if len(farm) != 2 {
		t.Fatalf("ForSeller(Farm Fresh Valley) = %d, want 2", len(farm))
	}
	if len(svc.ForSeller("Nobody Farms")) != 0 {
		t.Fatal("unknown seller should have no orders")
	}
}

func TestStatusStats(t *testing.T) {
	svc := multiSellerEngine(t)

	stats := svc.StatusStats()
	if stats[domain.StatusProcessing] != 2 || stats[domain.StatusCancelled] != 1 {
		t.Fatalf("stats = %v", stats)
	}
}

func TestTotalRevenueExcludesCancelled(t *testing.T) {
	svc := multiSellerEngine(t)

	// 449.00 (mixed) + 144.50 (bananas: 90+50+4.50); the cancelled
	// 260.00 does not count.
	if want := decimal.RequireFromString("593.50"); !svc.TotalRevenue().Equal(want) {
		t.Fatalf("revenue = %s, want %s", svc.TotalRevenue(), want)
	}
}

func TestTotalSoldBySellerExcludesCancelled(t *testing.T) {
	svc := multiSellerEngine(t)

	// 2 tomato units in the mixed order; the cancelled tomato order's
	// unit does not count.
	if got := svc.TotalSoldBySeller("Farm Fresh Valley"); got != 2 {
		t.Fatalf("sold = %d, want 2", got)
	}
	if got := svc.TotalSoldBySeller("Fruit Paradise"); got != 3 {
		t.Fatalf("sold = %d, want 3", got)
	}
}

func TestAverageOrderValue(t *testing.T) {
	svc := multiSellerEngine(t)

	// (449.00 + 144.50) / 2 = 296.75 over the active orders.
	if want := decimal.RequireFromString("296.75"); !svc.AverageOrderValue().Equal(want) {
		t.Fatalf("averageOrderValue = %s, want %s", svc.AverageOrderValue(), want)
	}
}

func TestAverageOrderValueEmpty(t *testing.T) {
	svc, _, _ := newEngine()
	if !svc.AverageOrderValue().IsZero() {
		t.Fatalf("expected zero, got %s", svc.AverageOrderValue())
	}
}
