package transport

import (
	"net/http"

	"bazario-be/internal/cart"
	"bazario-be/internal/logger"
	"bazario-be/internal/metrics"
	"bazario-be/internal/middleware"
	"bazario-be/internal/order"
	"bazario-be/internal/product"
	"bazario-be/internal/user"

	"github.com/go-chi/chi/v5"
)

// Handler is the thin HTTP boundary over the stores: decode, call, translate.
type Handler struct {
	UserSvc    user.Service
	ProductSvc product.Service
	CartSvc    cart.Service
	OrderSvc   order.Service
	Metrics    *metrics.Store
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(logger.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)

		r.Get("/stats", h.Stats)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/auth/user", h.CurrentUser)
			r.Put("/auth/user", h.UpdateProfile)

			r.Get("/my-products", h.ListMyProducts)
			r.Post("/products", h.CreateProduct)
			r.Put("/products/{id}", h.UpdateProduct)
			r.Delete("/products/{id}", h.DeleteProduct)

			r.Get("/cart", h.ListCart)
			r.Post("/cart", h.AddToCart)
			r.Put("/cart/{id}", h.SetCartQuantity)
			r.Delete("/cart/{id}", h.RemoveCartItem)

			r.Post("/orders", h.Checkout)
			r.Get("/orders", h.ListOrders)
			r.Put("/orders/{id}/status", h.UpdateOrderStatus)
		})
	})

	return r
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Metrics.Snapshot())
}
