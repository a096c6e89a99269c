package product

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrTitleRequired       = errors.New("product title is required")
	ErrDescriptionRequired = errors.New("product description is required")
	ErrInvalidCategory     = errors.New("invalid product category")
	ErrInvalidPrice        = errors.New("price must be greater than zero")
	ErrNoUpdateFields      = errors.New("no fields to update")

	// -- Resource State --
	// ErrProductNotFound is also returned when the product exists but is
	// owned by a different seller. The two cases are indistinguishable on
	// purpose.
	ErrProductNotFound = errors.New("product not found")
)
