package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothes     Category = "Clothes"
	CategoryBooks       Category = "Books"
	CategoryFurniture   Category = "Furniture"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryClothes, CategoryBooks, CategoryFurniture:
		return true
	}
	return false
}

type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url,omitempty"`
	SellerID    string          `json:"seller_id"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Seller is the public slice of the owning user, joined at read time for
// catalog views.
type Seller struct {
	ID              string  `json:"id"`
	Email           *string `json:"email,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

type ProductWithSeller struct {
	Product
	Seller Seller `json:"seller"`
}

type CreateParams struct {
	Title       string
	Description string
	Category    Category
	Price       decimal.Decimal
	ImageURL    *string
}

// UpdateParams carries a partial field set; nil fields are left untouched.
type UpdateParams struct {
	Title       *string
	Description *string
	Category    *Category
	Price       *decimal.Decimal
	ImageURL    *string
}

func (p UpdateParams) HasAnyField() bool {
	return p.Title != nil || p.Description != nil || p.Category != nil ||
		p.Price != nil || p.ImageURL != nil
}

type GetOptions struct {
	ProductID  string
	OnlyActive bool
}
