package user

import "time"

type User struct {
	ID              string    `json:"id"`
	Email           *string   `json:"email,omitempty"`
	PasswordHash    *string   `json:"-"`
	FirstName       *string   `json:"first_name,omitempty"`
	LastName        *string   `json:"last_name,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Address         *string   `json:"address,omitempty"`
	City            *string   `json:"city,omitempty"`
	PinCode         *string   `json:"pin_code,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpsertParams carries the profile fields a caller may set. Nil fields keep
// the stored value.
type UpsertParams struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	Phone           *string
	Address         *string
	City            *string
	PinCode         *string
	ProfileImageURL *string
}
