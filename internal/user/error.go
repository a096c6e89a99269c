package user

import "errors"

var (
	// -- Validation & Input --
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")

	// -- Resource State --
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
