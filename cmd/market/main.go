package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	cartapp "github.com/farmconnect/marketplace/internal/cart/app"
	cartkv "github.com/farmconnect/marketplace/internal/cart/infra/kvstore"

	catalogapp "github.com/farmconnect/marketplace/internal/catalog/app"
	catalogdomain "github.com/farmconnect/marketplace/internal/catalog/domain"
	catalogkv "github.com/farmconnect/marketplace/internal/catalog/infra/kvstore"

	orderapp "github.com/farmconnect/marketplace/internal/order/app"
	orderdomain "github.com/farmconnect/marketplace/internal/order/domain"
	orderadapter "github.com/farmconnect/marketplace/internal/order/infra/adapter"
	orderkv "github.com/farmconnect/marketplace/internal/order/infra/kvstore"

	identityapp "github.com/farmconnect/marketplace/internal/identity/app"
	identitykv "github.com/farmconnect/marketplace/internal/identity/infra/kvstore"

	"github.com/farmconnect/marketplace/pkg/config"
	"github.com/farmconnect/marketplace/pkg/kvstore"
	"github.com/farmconnect/marketplace/pkg/logger"
	"github.com/farmconnect/marketplace/pkg/shutdown"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "market",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := kvstore.New(afero.NewOsFs(), cfg.DataDir, log)
	if err != nil {
		log.Error("store init failed", "err", err)
		os.Exit(1)
	}

	catalog := catalogapp.NewService(catalogkv.NewProductStore(store), log)
	catalog.SeedIfEmpty(catalogdomain.SeedProducts())

	cart := cartapp.NewService(cartkv.NewCartStore(store), log)
	orders := orderapp.NewService(
		orderkv.NewOrderStore(store),
		orderadapter.NewCartReader(cart),
		orderadapter.NewCatalogWriter(catalog),
		time.Duration(cfg.PlaceOrderLatencyMS)*time.Millisecond,
		log,
	)
	session := identityapp.NewService(identitykv.NewSessionStore(store), log)

	log.Info("marketplace ready",
		"products", len(catalog.All()),
		"orders", len(orders.All()),
		"dataDir", cfg.DataDir,
	)

	if err := runDemo(ctx, log, catalog, cart, orders, session); err != nil {
		log.Error("demo session failed", "err", err)
		os.Exit(1)
	}
}

// runDemo walks one buyer session end to end: login, browse, fill the
// cart, place a couponed order, move it through the status machine and
// report the aggregates.
func runDemo(
	ctx context.Context,
	log *slog.Logger,
	catalog *catalogapp.Service,
	cart *cartapp.Service,
	orders *orderapp.Service,
	session *identityapp.Service,
) error {
	buyer, err := session.Login("buyer@farmconnect.com", "buyer123")
	if err != nil {
		return err
	}
	log.Info("logged in", "user", buyer.Email, "role", buyer.Role)

	for _, hit := range catalog.Search("organic") {
		log.Info("search hit", "name", hit.Name, "price", hit.Price, "stock", hit.Stock)
	}

	for _, id := range []string{"9", "3", "9"} {
		p, err := catalog.GetByID(id)
		if err != nil {
			return err
		}
		if err := cart.Add(cartapp.ProductInfo{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			SellerName: p.SellerName,
			Image:      p.Image,
			Stock:      p.Stock,
		}, 1); err != nil {
			return err
		}
	}
	log.Info("cart filled", "items", cart.ItemCount(), "total", cart.FormattedTotal())

	if ctx.Err() != nil {
		return ctx.Err()
	}

	order, err := orders.PlaceOrder(
		orderdomain.User{Email: buyer.Email, Name: buyer.Name},
		orderdomain.ShippingInfo{
			FullName: buyer.Name,
			Email:    buyer.Email,
			Phone:    "9876543210",
			Address:  "12 Bazaar Road",
			City:     "Jaipur",
			State:    "Rajasthan",
			PinCode:  "302001",
		},
		"FARMFRESH",
	)
	if err != nil {
		return err
	}
	log.Info("order placed",
		"id", order.ID,
		"subtotal", order.Subtotal,
		"total", order.Total,
		"tracking", order.TrackingID,
	)

	if err := orders.UpdateStatus(order.ID, orderdomain.StatusDispatched); err != nil {
		return err
	}
	if err := orders.UpdateStatus(order.ID, orderdomain.StatusDelivered); err != nil {
		return err
	}
	if err := orders.LeaveReview(order.ID, "9", orderapp.ProductReview{
		Rating:   5,
		Text:     "Best honey in the district",
		Reviewer: buyer.Name,
	}); err != nil {
		return err
	}

	delivered, err := orders.ByID(order.ID)
	if err != nil {
		return err
	}
	log.Info("order delivered", "events", len(delivered.Events))

	log.Info("marketplace stats",
		"statusCounts", orders.StatusStats(),
		"revenue", orders.TotalRevenue(),
		"avgOrderValue", orders.AverageOrderValue(),
	)
	for _, p := range catalog.BestSelling(3) {
		log.Info("best seller", "name", p.Name, "sold", p.SoldCount, "rating", p.Rating)
	}
	return nil
}
