package cart

import (
	"time"

	"bazario-be/internal/product"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// Row is the flat cart-plus-product-plus-seller projection returned by the
// repository. Price is the live catalog price, not a snapshot.
type Row struct {
	ItemID    string
	UserID    string
	Quantity  int
	CreatedAt time.Time

	ProductID       string
	Title           string
	Description     string
	Category        product.Category
	Price           decimal.Decimal
	ProductImageURL *string
	ProductActive   bool
	SellerID        string

	SellerEmail     *string
	SellerFirstName *string
	SellerLastName  *string
	SellerImageURL  *string
}

type ItemWithProduct struct {
	CartItem
	Product product.ProductWithSeller `json:"product"`
}

type AddParams struct {
	ProductID string
	Quantity  int
}
