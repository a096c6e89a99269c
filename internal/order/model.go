package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentCOD:
		return true
	}
	return false
}

type DeliveryStatus string

const (
	StatusOrdered        DeliveryStatus = "ordered"
	StatusShipped        DeliveryStatus = "shipped"
	StatusOutForDelivery DeliveryStatus = "out_for_delivery"
	StatusDelivered      DeliveryStatus = "delivered"
)

// statusRank orders the delivery states; transitions only move forward.
var statusRank = map[DeliveryStatus]int{
	StatusOrdered:        0,
	StatusShipped:        1,
	StatusOutForDelivery: 2,
	StatusDelivered:      3,
}

func (s DeliveryStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo reports whether target is a strict forward step from s.
func (s DeliveryStatus) CanAdvanceTo(target DeliveryStatus) bool {
	from, okFrom := statusRank[s]
	to, okTo := statusRank[target]
	return okFrom && okTo && to > from
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	DeliveryStatus  DeliveryStatus  `json:"delivery_status"`
	DeliveryDate    *time.Time      `json:"delivery_date,omitempty"`
	ShippingAddress string          `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Items           []OrderItem     `json:"items,omitempty"`
}

// OrderItem keeps the unit price snapshotted at order time. ProductTitle and
// ProductImageURL are joined in for display; the referenced product may have
// been soft-deleted since.
type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`

	ProductTitle    string  `json:"product_title,omitempty"`
	ProductImageURL *string `json:"product_image_url,omitempty"`
}

type CheckoutParams struct {
	PaymentMethod   PaymentMethod
	ShippingAddress string
}
