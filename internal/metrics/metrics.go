package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Store collects per-store operation counters. A single instance is shared
// by the services and exposed through the stats endpoint.
type Store struct {
	ProductsCreated  Counter
	ProductsDisabled Counter
	CartMerges       Counter
	OrdersCreated    Counter
	CheckoutFailures Counter
	CartClearMisses  Counter
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"products_created":  s.ProductsCreated.Load(),
		"products_disabled": s.ProductsDisabled.Load(),
		"cart_merges":       s.CartMerges.Load(),
		"orders_created":    s.OrdersCreated.Load(),
		"checkout_failures": s.CheckoutFailures.Load(),
		"cart_clear_misses": s.CartClearMisses.Load(),
	}
}
