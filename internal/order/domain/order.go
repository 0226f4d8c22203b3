package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the closed set of order states. The happy path is
// Processing -> Dispatched -> Delivered; Cancelled is reachable from
// Processing or Dispatched. Delivered and Cancelled are terminal.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusDispatched Status = "Dispatched"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

var transitions = map[Status][]Status{
	StatusProcessing: {StatusDispatched, StatusCancelled},
	StatusDispatched: {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ShippingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pinCode"`
	Landmark string `json:"landmark,omitempty"`
}

// Payment is simulated and always succeeds.
type Payment struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

type Coupon struct {
	Code     string `json:"code"`
	Discount int    `json:"discount"`
}

// Event is one entry in an order's append-only audit trail. Status
// here is a free-form label ("Order Placed", "Confirmed", ...), not
// restricted to the Status enum.
type Event struct {
	Time        time.Time `json:"time"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}

// ItemReview is the denormalized per-line review cache; the catalog's
// product reviews are the canonical store.
type ItemReview struct {
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Reviewer  string    `json:"reviewer"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItem is an immutable line snapshot taken at placement.
type OrderItem struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
	Seller    string          `json:"seller"`
	Image     string          `json:"image,omitempty"`
	Review    *ItemReview     `json:"review,omitempty"`
}

type Order struct {
	ID    string      `json:"id"`
	User  User        `json:"user"`
	Items []OrderItem `json:"items"`

	// Subtotal and Total are fixed two-decimal strings snapshotted at
	// placement; Subtotal is the pre-discount item sum, Total comes out
	// of the checkout pipeline with any coupon applied.
	Subtotal string  `json:"subtotal"`
	Total    string  `json:"total"`
	Coupon   *Coupon `json:"coupon,omitempty"`

	ShippingInfo ShippingInfo `json:"shippingInfo"`
	Payment      Payment      `json:"payment"`

	Status             Status  `json:"status"`
	CancellationReason string  `json:"cancellationReason,omitempty"`
	Events             []Event `json:"events"`

	TrackingID        string    `json:"trackingId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}
