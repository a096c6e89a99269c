package main

import (
	"log"
	"net/http"

	"bazario-be/internal/cart"
	"bazario-be/internal/config"
	"bazario-be/internal/db"
	"bazario-be/internal/logger"
	"bazario-be/internal/metrics"
	"bazario-be/internal/order"
	"bazario-be/internal/product"
	"bazario-be/internal/transport"
	"bazario-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	store := metrics.NewStore()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo, store)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo, store)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartRepo, order.NewScheduler(), cfg.TaxRate, store)

	h := &transport.Handler{
		UserSvc:    userSvc,
		ProductSvc: productSvc,
		CartSvc:    cartSvc,
		OrderSvc:   orderSvc,
		Metrics:    store,
	}

	log.Printf("server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, h.Router()))
}
