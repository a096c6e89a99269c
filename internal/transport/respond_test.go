package transport

import (
	"errors"
	"net/http"
	"testing"

	"bazario-be/internal/cart"
	"bazario-be/internal/order"
	"bazario-be/internal/product"
	"bazario-be/internal/user"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", product.ErrUserNotAuthenticated, http.StatusUnauthorized},
		{"bad credentials", user.ErrInvalidCredentials, http.StatusUnauthorized},
		{"product missing", product.ErrProductNotFound, http.StatusNotFound},
		{"cart line missing", cart.ErrCartItemNotFound, http.StatusNotFound},
		{"order missing", order.ErrOrderNotFound, http.StatusNotFound},
		{"bad quantity", cart.ErrInvalidQuantity, http.StatusBadRequest},
		{"inactive product in cart", cart.ErrProductNotFound, http.StatusBadRequest},
		{"empty cart", order.ErrCartEmpty, http.StatusBadRequest},
		{"backward status", order.ErrInvalidStatusTransition, http.StatusBadRequest},
		{"duplicate email", user.ErrEmailExists, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}
