package order

import (
	"math/rand"
	"time"
)

const (
	minDeliveryDays = 3
	deliveryDaySpan = 5 // 3 to 7 days inclusive
)

// Scheduler picks the placeholder delivery date for new orders. Clock and
// randomness are injectable so tests can pin the result.
type Scheduler struct {
	Now  func() time.Time
	Intn func(n int) int
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		Now:  time.Now,
		Intn: rand.Intn,
	}
}

// DeliveryDate returns a date 3 to 7 days from now. This is a scheduling
// placeholder, not a logistics computation.
func (s *Scheduler) DeliveryDate() time.Time {
	days := minDeliveryDays + s.Intn(deliveryDaySpan)
	return s.Now().AddDate(0, 0, days)
}
