package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_CanAdvanceTo(t *testing.T) {
	cases := []struct {
		from DeliveryStatus
		to   DeliveryStatus
		want bool
	}{
		{StatusOrdered, StatusShipped, true},
		{StatusOrdered, StatusDelivered, true},
		{StatusShipped, StatusOutForDelivery, true},
		{StatusShipped, StatusOrdered, false},
		{StatusShipped, StatusShipped, false},
		{StatusDelivered, StatusOutForDelivery, false},
		{StatusDelivered, StatusDelivered, false},
		{StatusOrdered, "teleported", false},
		{"teleported", StatusShipped, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanAdvanceTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentCard.Valid())
	assert.True(t, PaymentUPI.Valid())
	assert.True(t, PaymentCOD.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
