package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedProducts returns the starter catalog used when the store is
// empty on first run.
func SeedProducts() []Product {
	now := time.Now().UTC()

	seed := []struct {
		id, name, desc string
		price          int64
		category       string
		seller         string
		sellerEmail    string
		rating         string
		stock          int
		soldCount      int
	}{
		{"1", "Fresh Tomatoes", "Organic red tomatoes from local farm", 45, "vegetables", "Farm Fresh Valley", "farm@fresh.com", "4.8", 150, 250},
		{"2", "Organic Bananas", "Fresh yellow bananas from tropical farms", 30, "fruits", "Fruit Paradise", "fruit@paradise.com", "4.9", 200, 320},
		{"3", "Brown Rice", "Organic brown rice, high in fiber", 120, "grains", "Grain Supplier Co", "grains@supplier.com", "4.7", 80, 180},
		{"4", "Fresh Carrots", "Crunchy orange carrots, rich in vitamins", 35, "vegetables", "Farm Fresh Valley", "farm@fresh.com", "4.6", 120, 190},
		{"5", "Red Apples", "Sweet and juicy red apples", 60, "fruits", "Fruit Paradise", "fruit@paradise.com", "4.8", 100, 210},
		{"6", "Organic Milk", "Fresh organic cow milk, daily supply", 50, "dairy", "Dairy Fresh Farms", "dairy@fresh.com", "4.9", 200, 450},
		{"7", "Spinach", "Fresh green spinach, high in iron", 25, "vegetables", "Farm Fresh Valley", "farm@fresh.com", "4.7", 90, 140},
		{"8", "Turmeric Powder", "Pure turmeric powder with healing properties", 85, "spices", "Spice Master", "spices@master.com", "4.6", 60, 95},
		{"9", "Honey", "Pure raw honey from local bees", 180, "organic", "Bee Keepers", "honey@beekeepers.com", "4.9", 45, 230},
		{"10", "Broccoli", "Fresh green broccoli, super healthy", 50, "vegetables", "Farm Fresh Valley", "farm@fresh.com", "4.8", 70, 160},
		{"11", "Eggs", "Fresh free-range eggs from happy hens", 40, "dairy", "Dairy Fresh Farms", "dairy@fresh.com", "4.7", 150, 380},
		{"12", "Strawberries", "Sweet and juicy strawberries", 80, "fruits", "Fruit Paradise", "fruit@paradise.com", "4.9", 55, 280},
	}

	out := make([]Product, 0, len(seed))
	for _, s := range seed {
		out = append(out, Product{
			ID:          s.id,
			Name:        s.name,
			Description: s.desc,
			Price:       decimal.NewFromInt(s.price),
			Stock:       s.stock,
			Category:    s.category,
			SellerName:  s.seller,
			SellerEmail: s.sellerEmail,
			Rating:      decimal.RequireFromString(s.rating),
			Reviews:     []Review{},
			SoldCount:   s.soldCount,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return out
}
