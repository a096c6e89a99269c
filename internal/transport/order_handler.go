package transport

import (
	"net/http"

	"bazario-be/internal/order"

	"github.com/go-chi/chi/v5"
)

type checkoutRequest struct {
	PaymentMethod   order.PaymentMethod `json:"payment_method"`
	ShippingAddress string              `json:"shipping_address"`
}

type updateStatusRequest struct {
	DeliveryStatus order.DeliveryStatus `json:"delivery_status"`
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	o, err := h.OrderSvc.Checkout(r.Context(), order.CheckoutParams{
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderSvc.ListForUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	o, err := h.OrderSvc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.DeliveryStatus)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}
