package app

import (
	"errors"
	"testing"

	"github.com/farmconnect/marketplace/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type memStore struct {
	products []domain.Product
	ok       bool
	saves    int
	failSave bool
}

func (m *memStore) Load() ([]domain.Product, bool) { return m.products, m.ok }

func (m *memStore) Save(products []domain.Product) error {
	m.saves++
	if m.failSave {
		return errors.New("disk full")
	}
	m.products = products
	return nil
}

func newTestService() (*Service, *memStore) {
	st := &memStore{}
	return NewService(st, nil), st
}

func mustAdd(t *testing.T, svc *Service, in NewProduct) domain.Product {
	t.Helper()
	p, err := svc.AddProduct(in)
	if err != nil {
		t.Fatalf("AddProduct(%q) failed: %v", in.Name, err)
	}
	return p
}

func TestAddProductValidation(t *testing.T) {
	svc, _ := newTestService()

	t.Run("empty name -> invalid", func(t *testing.T) {
		_, err := svc.AddProduct(NewProduct{Name: "   ", Price: decimal.NewFromInt(10)})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative price -> invalid", func(t *testing.T) {
		_, err := svc.AddProduct(NewProduct{Name: "Honey", Price: decimal.NewFromInt(-1)})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		if _, err := svc.AddProduct(NewProduct{Name: "Free sample"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAddProductDefaults(t *testing.T) {
	svc, _ := newTestService()

	p := mustAdd(t, svc, NewProduct{Name: "Honey", Price: decimal.NewFromInt(180)})
	if p.Category != "other" {
		t.Fatalf("category default = %q", p.Category)
	}
	if p.SellerName != "Unknown Seller" || p.SellerEmail != "unknown@example.com" {
		t.Fatalf("seller defaults = %q / %q", p.SellerName, p.SellerEmail)
	}
	if p.Stock != 0 || p.SoldCount != 0 || p.TotalRatings != 0 {
		t.Fatalf("counters not zeroed: %+v", p)
	}
	if p.Reviews == nil || len(p.Reviews) != 0 {
		t.Fatalf("reviews should start empty, got %v", p.Reviews)
	}
	if p.ID == "" || p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Fatalf("missing id or timestamps: %+v", p)
	}
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := newTestService()
	p := mustAdd(t, svc, NewProduct{Name: "Spinach", Price: decimal.NewFromInt(25)})

	newPrice := decimal.NewFromInt(30)
	newStock := 40
	if err := svc.UpdateProduct(p.ID, ProductPatch{Price: &newPrice, Stock: &newStock}); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	got, err := svc.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.Price.Equal(newPrice) || got.Stock != 40 {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Name != "Spinach" {
		t.Fatalf("untouched field changed: %q", got.Name)
	}

	if err := svc.UpdateProduct("missing", ProductPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProductIdempotent(t *testing.T) {
	svc, _ := newTestService()
	p := mustAdd(t, svc, NewProduct{Name: "Eggs", Price: decimal.NewFromInt(40)})

	svc.DeleteProduct(p.ID)
	svc.DeleteProduct(p.ID)

	if _, err := svc.GetByID(p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDecrementStockClampsButCountsFullQty(t *testing.T) {
	svc, _ := newTestService()
	p := mustAdd(t, svc, NewProduct{Name: "Broccoli", Price: decimal.NewFromInt(50), Stock: 3})

	if err := svc.DecrementStock(p.ID, 10); err != nil {
		t.Fatalf("DecrementStock failed: %v", err)
	}

	got, _ := svc.GetByID(p.ID)
	if got.Stock != 0 {
		t.Fatalf("stock should clamp to 0, got %d", got.Stock)
	}
	if got.SoldCount != 10 {
		t.Fatalf("soldCount should reflect full requested qty, got %d", got.SoldCount)
	}

	if err := svc.DecrementStock(p.ID, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("qty 0 should be invalid, got %v", err)
	}
}

func TestIncrementStock(t *testing.T) {
	svc, _ := newTestService()
	p := mustAdd(t, svc, NewProduct{Name: "Milk", Price: decimal.NewFromInt(50), Stock: 5})

	if err := svc.IncrementStock(p.ID, 7); err != nil {
		t.Fatalf("IncrementStock failed: %v", err)
	}
	got, _ := svc.GetByID(p.ID)
	if got.Stock != 12 {
		t.Fatalf("stock = %d, want 12", got.Stock)
	}

	if err := svc.IncrementStock(p.ID, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative qty should be invalid, got %v", err)
	}
}

func TestReviewRatingRecompute(t *testing.T) {
	svc, _ := newTestService()
	p := mustAdd(t, svc, NewProduct{Name: "Rice", Price: decimal.NewFromInt(120)})

	for _, rating := range []int{5, 4, 3} {
		if err := svc.AddReview(p.ID, domain.Review{Rating: rating, Reviewer: "sana"}); err != nil {
			t.Fatalf("AddReview(%d) failed: %v", rating, err)
		}
	}

	got, _ := svc.GetByID(p.ID)
	if want := decimal.NewFromInt(4); !got.Rating.Equal(want) {
		t.Fatalf("rating after [5 4 3] = %s, want %s", got.Rating, want)
	}
	if got.TotalRatings != 3 {
		t.Fatalf("totalRatings = %d, want 3", got.TotalRatings)
	}

	// Removing the middle review leaves [5 3]: mean 4.0.
	if err := svc.DeleteReview(p.ID, 1); err != nil {
		t.Fatalf("DeleteReview failed: %v", err)
	}
	got, _ = svc.GetByID(p.ID)
	if want := decimal.NewFromInt(4); !got.Rating.Equal(want) {
		t.Fatalf("rating after delete = %s, want %s", got.Rating, want)
	}
	if got.TotalRatings != 2 || len(got.Reviews) != 2 {
		t.Fatalf("counts after delete: totalRatings=%d reviews=%d", got.TotalRatings, len(got.Reviews))
	}
}

func TestReviewRatingRoundsHalfUp(t *testing.T) {
	svc, _ := newTestService()
	p := mustAdd(t, svc, NewProduct{Name: "Apples", Price: decimal.NewFromInt(60)})

	for _, rating := range []int{4, 5} {
		if err := svc.AddReview(p.ID, domain.Review{Rating: rating}); err != nil {
			t.Fatalf("AddReview failed: %v", err)
		}
	}
	got, _ := svc.GetByID(p.ID)
	if want := decimal.RequireFromString("4.5"); !got.Rating.Equal(want) {
		t.Fatalf("rating = %s, want %s", got.Rating, want)
	}
}

func TestDeleteReviewEmptiesRating(t *testing.T) {
	svc, _ := newTestService()
	p := mustAdd(t, svc, NewProduct{Name: "Carrots", Price: decimal.NewFromInt(35)})

	if err := svc.AddReview(p.ID, domain.Review{Rating: 5}); err != nil {
		t.Fatalf("AddReview failed: %v", err)
	}
	if err := svc.DeleteReview(p.ID, 0); err != nil {
		t.Fatalf("DeleteReview failed: %v", err)
	}

	got, _ := svc.GetByID(p.ID)
	if !got.Rating.IsZero() || got.TotalRatings != 0 {
		t.Fatalf("expected zeroed rating, got rating=%s totalRatings=%d", got.Rating, got.TotalRatings)
	}

	if err := svc.DeleteReview(p.ID, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("out-of-range index should be invalid, got %v", err)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	svc, _ := newTestService()
	p := mustAdd(t, svc, NewProduct{Name: "Turmeric", Price: decimal.NewFromInt(85)})

	for _, rating := range []int{0, 6, -1} {
		if err := svc.AddReview(p.ID, domain.Review{Rating: rating}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("rating %d should be invalid, got %v", rating, err)
		}
	}
}

func TestPersistFailureKeepsMutation(t *testing.T) {
	st := &memStore{failSave: true}
	svc := NewService(st, nil)

	p, err := svc.AddProduct(NewProduct{Name: "Tomatoes", Price: decimal.NewFromInt(45)})
	if err != nil {
		t.Fatalf("AddProduct should succeed despite save failure: %v", err)
	}
	if _, err := svc.GetByID(p.ID); err != nil {
		t.Fatalf("in-memory state should be authoritative: %v", err)
	}
	if st.saves == 0 {
		t.Fatal("save was never attempted")
	}
}

func TestLoadRestoresCatalog(t *testing.T) {
	st := &memStore{products: domain.SeedProducts(), ok: true}
	svc := NewService(st, nil)

	if got := len(svc.All()); got != 12 {
		t.Fatalf("restored %d products, want 12", got)
	}
}
