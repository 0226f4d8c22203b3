package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	checkout "github.com/farmconnect/marketplace/internal/checkout/app"
	"github.com/farmconnect/marketplace/internal/order/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, cannot place order")
	ErrMissingUser       = errors.New("user information is required")
	ErrMissingShipping   = errors.New("shipping information is required")
	ErrNotFound          = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Service is the order engine: placement, the status machine, the
// event log, reviews and history queries. Orders are kept newest
// first.
type Service struct {
	mu      sync.Mutex
	store   OrderStore
	cart    CartReader
	catalog CatalogWriter
	log     *slog.Logger
	orders  []domain.Order

	// latency models the simulated backend round-trip on placement.
	latency time.Duration
}

func NewService(store OrderStore, cart CartReader, catalog CatalogWriter, latency time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{store: store, cart: cart, catalog: catalog, latency: latency, log: log}
	if orders, ok := store.Load(); ok {
		s.orders = orders
	}
	return s
}

// PlaceOrder turns the current cart into an immutable order. Pricing
// always goes through the checkout pipeline, coupon included, so the
// stored total matches what the checkout summary showed. Validation
// failures leave cart and history untouched.
func (s *Service) PlaceOrder(user domain.User, shipping domain.ShippingInfo, couponCode string) (domain.Order, error) {
	if s.latency > 0 {
		// Base delay plus up to a third extra, as a stand-in for a
		// backend round-trip.
		time.Sleep(s.latency + time.Duration(rand.Int63n(int64(s.latency/3)+1)))
	}

	var coupon *domain.Coupon
	discountPercent := 0
	if strings.TrimSpace(couponCode) != "" {
		c, err := checkout.LookupCoupon(couponCode)
		if err != nil {
			return domain.Order{}, err
		}
		coupon = &domain.Coupon{Code: c.Code, Discount: c.Discount}
		discountPercent = c.Discount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(user.Email) == "" {
		return domain.Order{}, ErrMissingUser
	}
	if strings.TrimSpace(shipping.Address) == "" {
		return domain.Order{}, ErrMissingShipping
	}

	if user.Name == "" {
		user.Name = "Guest"
	}

	subtotal := decimal.Zero
	itemCount := 0
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		seller := l.Seller
		if seller == "" {
			seller = "Unknown Seller"
		}
		items = append(items, domain.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Qty:       l.Qty,
			Seller:    seller,
			Image:     l.Image,
		})
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Qty))))
		itemCount += l.Qty
	}

	summary := checkout.Summarize(subtotal, itemCount, len(lines), discountPercent)

	now := time.Now().UTC()
	order := domain.Order{
		ID:           newOrderID(now),
		User:         user,
		Items:        items,
		Subtotal:     summary.Subtotal.StringFixed(2),
		Total:        summary.Total.StringFixed(2),
		Coupon:       coupon,
		ShippingInfo: shipping,
		Payment: domain.Payment{
			Method:        "Online",
			Status:        "Completed",
			TransactionID: fmt.Sprintf("TXN-%d", now.UnixMilli()),
		},
		Status: domain.StatusProcessing,
		Events: []domain.Event{
			{Time: now, Status: "Order Placed", Description: "Your order has been placed successfully"},
			{Time: now.Add(time.Second), Status: "Confirmed", Description: "Order confirmed by seller"},
		},
		TrackingID:        newTrackingID(),
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(3 * 24 * time.Hour),
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.persist()

	// Stock decrements are best-effort external calls; a missing
	// product must not undo a placed order.
	for _, it := range items {
		if err := s.catalog.DecrementStock(it.ProductID, it.Qty); err != nil {
			s.log.Warn("stock decrement failed", "order", order.ID, "product", it.ProductID, "err", err)
		}
	}
	s.cart.Clear()

	return order, nil
}

// UpdateStatus moves an order along the status machine, logging the
// transition as an event. Unknown statuses and illegal transitions are
// rejected.
func (s *Service) UpdateStatus(orderID string, next domain.Status) error {
	if !next.Valid() {
		return fmt.Errorf("%q: %w", next, ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(orderID)
	if i < 0 {
		return ErrNotFound
	}

	o := &s.orders[i]
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%s -> %s: %w", o.Status, next, ErrIllegalTransition)
	}

	now := time.Now().UTC()
	o.Status = next
	o.UpdatedAt = now
	o.Events = append(o.Events, domain.Event{
		Time:        now,
		Status:      string(next),
		Description: fmt.Sprintf("Order status updated to %s", next),
	})
	s.persist()
	return nil
}

// Cancel is the dedicated transition to Cancelled; the reason lands in
// both the order field and the event trail.
func (s *Service) Cancel(orderID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		reason = "User request"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(orderID)
	if i < 0 {
		return ErrNotFound
	}

	o := &s.orders[i]
	if !o.Status.CanTransitionTo(domain.StatusCancelled) {
		return fmt.Errorf("%s -> %s: %w", o.Status, domain.StatusCancelled, ErrIllegalTransition)
	}

	now := time.Now().UTC()
	o.Status = domain.StatusCancelled
	o.CancellationReason = reason
	o.UpdatedAt = now
	o.Events = append(o.Events, domain.Event{
		Time:        now,
		Status:      string(domain.StatusCancelled),
		Description: fmt.Sprintf("Order cancelled. Reason: %s", reason),
	})
	s.persist()
	return nil
}

// AddEvent appends a free-form entry to the order's audit trail
// without touching its status.
func (s *Service) AddEvent(orderID, status, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(orderID)
	if i < 0 {
		return ErrNotFound
	}

	now := time.Now().UTC()
	o := &s.orders[i]
	o.UpdatedAt = now
	o.Events = append(o.Events, domain.Event{Time: now, Status: status, Description: description})
	s.persist()
	return nil
}

// LeaveReview records a buyer's review of a purchased item. The
// catalog's product reviews are the canonical store, written through
// first; the order line keeps a denormalized copy for order-history
// rendering.
func (s *Service) LeaveReview(orderID, productID string, review ProductReview) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(orderID)
	if i < 0 {
		return ErrNotFound
	}

	o := &s.orders[i]
	for j := range o.Items {
		if o.Items[j].ProductID != productID {
			continue
		}

		if err := s.catalog.AddReview(productID, review); err != nil {
			// Product may have been delisted; the order-side copy is
			// still worth keeping.
			s.log.Warn("review write-through failed", "order", orderID, "product", productID, "err", err)
		}

		o.Items[j].Review = &domain.ItemReview{
			Rating:    review.Rating,
			Text:      review.Text,
			Reviewer:  review.Reviewer,
			CreatedAt: time.Now().UTC(),
		}
		s.persist()
		return nil
	}
	return ErrNotFound
}

func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), randomToken(9))
}

func newTrackingID() string {
	return "TXN" + randomToken(5)
}

func randomToken(n int) string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:n])
}

// index must be called with the lock held.
func (s *Service) index(orderID string) int {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

// persist must be called with the lock held.
func (s *Service) persist() {
	if err := s.store.Save(s.orders); err != nil {
		s.log.Error("orders persist failed", "err", err)
	}
}
