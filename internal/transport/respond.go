package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"bazario-be/internal/cart"
	"bazario-be/internal/logger"
	"bazario-be/internal/order"
	"bazario-be/internal/product"
	"bazario-be/internal/user"

	"go.uber.org/zap"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		// Do not leak internals.
		writeJSON(w, status, errorResponse{Message: "internal server error"})
		return
	}

	writeJSON(w, status, errorResponse{Message: err.Error()})
}

// statusFor maps domain sentinels onto the HTTP error taxonomy: validation
// errors 400, missing auth 401, merged not-found/not-authorized 404,
// everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, product.ErrUserNotAuthenticated),
		errors.Is(err, cart.ErrUserNotAuthenticated),
		errors.Is(err, order.ErrUserNotAuthenticated),
		errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, product.ErrTitleRequired),
		errors.Is(err, product.ErrDescriptionRequired),
		errors.Is(err, product.ErrInvalidCategory),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrNoUpdateFields),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, order.ErrShippingAddressRequired),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, order.ErrCartEmpty),
		errors.Is(err, user.ErrEmailRequired),
		errors.Is(err, user.ErrPasswordRequired):
		return http.StatusBadRequest

	case errors.Is(err, user.ErrEmailExists):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
