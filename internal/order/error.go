package order

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrShippingAddressRequired = errors.New("shipping address is required")
	ErrInvalidStatus           = errors.New("invalid delivery status")
	ErrInvalidStatusTransition = errors.New("delivery status can only move forward")

	// -- Resource State --
	ErrCartEmpty     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)
