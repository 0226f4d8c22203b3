package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	SellerEmail string          `json:"sellerEmail"`
	SellerName  string          `json:"sellerName"`

	// Rating is the mean of Reviews ratings rounded to one decimal,
	// zero when there are no reviews. TotalRatings tracks len(Reviews).
	Rating       decimal.Decimal `json:"rating"`
	TotalRatings int             `json:"totalRatings"`
	Reviews      []Review        `json:"reviews"`

	// SoldCount only ever increases, via stock decrements.
	SoldCount int `json:"soldCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Review struct {
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Reviewer  string    `json:"reviewer"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingOf computes the mean review rating rounded to one decimal,
// half-up. Zero when reviews is empty.
func RatingOf(reviews []Review) decimal.Decimal {
	if len(reviews) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(reviews)))).
		Round(1)
}
