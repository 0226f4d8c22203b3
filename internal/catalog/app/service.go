package app

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/farmconnect/marketplace/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service owns the product catalog. All mutations run to completion
// under the lock and persist synchronously, fire-and-forget.
type Service struct {
	mu       sync.Mutex
	store    ProductStore
	log      *slog.Logger
	products []domain.Product
}

func NewService(store ProductStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{store: store, log: log}
	if products, ok := store.Load(); ok {
		s.products = products
	}
	return s
}

// SeedIfEmpty installs the given products when the catalog has none.
func (s *Service) SeedIfEmpty(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.products) > 0 {
		return
	}
	s.products = append([]domain.Product(nil), products...)
	s.persist()
}

// NewProduct is the validated input for AddProduct. Name and a
// non-negative Price are required; everything else has defaults.
type NewProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	Image       string
	SellerEmail string
	SellerName  string
}

func (s *Service) AddProduct(in NewProduct) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() {
		return domain.Product{}, ErrInvalidInput
	}

	category := in.Category
	if category == "" {
		category = "other"
	}
	sellerEmail := in.SellerEmail
	if sellerEmail == "" {
		sellerEmail = "unknown@example.com"
	}
	sellerName := in.SellerName
	if sellerName == "" {
		sellerName = "Unknown Seller"
	}
	stock := in.Stock
	if stock < 0 {
		stock = 0
	}

	now := time.Now().UTC()
	p := domain.Product{
		ID:          strconv.FormatInt(now.UnixNano(), 10),
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       stock,
		Category:    category,
		Image:       in.Image,
		SellerEmail: sellerEmail,
		SellerName:  sellerName,
		Reviews:     []domain.Review{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product{p}, s.products...)
	s.persist()
	return p, nil
}

// ProductPatch carries the fields UpdateProduct may change; nil fields
// are left as they are.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *string
	Image       *string
}

func (s *Service) UpdateProduct(id string, patch ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}

	p := &s.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	p.UpdatedAt = time.Now().UTC()
	s.persist()
	return nil
}

// DeleteProduct removes the product if present. Idempotent.
func (s *Service) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	s.persist()
}

func (s *Service) GetByID(id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return domain.Product{}, ErrNotFound
	}
	return s.products[i], nil
}

// DecrementStock clamps stock at zero but credits SoldCount with the
// full requested quantity even when stock was short. That asymmetry is
// load-bearing for sales reporting, keep it.
func (s *Service) DecrementStock(id string, qty int) error {
	if qty <= 0 {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}

	p := &s.products[i]
	p.Stock -= qty
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.SoldCount += qty
	p.UpdatedAt = time.Now().UTC()
	s.persist()
	return nil
}

func (s *Service) IncrementStock(id string, qty int) error {
	if qty <= 0 {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}

	p := &s.products[i]
	p.Stock += qty
	p.UpdatedAt = time.Now().UTC()
	s.persist()
	return nil
}

func (s *Service) AddReview(id string, review domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}

	review.CreatedAt = time.Now().UTC()
	p := &s.products[i]
	p.Reviews = append(p.Reviews, review)
	p.Rating = domain.RatingOf(p.Reviews)
	p.TotalRatings++
	s.persist()
	return nil
}

func (s *Service) DeleteReview(id string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}

	p := &s.products[i]
	if index < 0 || index >= len(p.Reviews) {
		return ErrInvalidInput
	}

	p.Reviews = append(p.Reviews[:index], p.Reviews[index+1:]...)
	p.Rating = domain.RatingOf(p.Reviews)
	if p.TotalRatings > 0 {
		p.TotalRatings--
	}
	s.persist()
	return nil
}

// index must be called with the lock held.
func (s *Service) index(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// persist must be called with the lock held. In-memory state stays
// authoritative when the write fails.
func (s *Service) persist() {
	if err := s.store.Save(s.products); err != nil {
		s.log.Error("catalog persist failed", "err", err)
	}
}
