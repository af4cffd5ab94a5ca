package metrics

import (
	"sync/atomic"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Checkout counts checkout and confirmation outcomes for the health
// endpoint.
type Checkout struct {
	OrdersCreated    Counter
	IntentsFailed    Counter
	OrdersPaid       Counter
	OrdersFailed     Counter
	ClaimsRejected   Counter
	RepeatDeliveries Counter
}

func (c *Checkout) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"orders_created":    c.OrdersCreated.Load(),
		"intents_failed":    c.IntentsFailed.Load(),
		"orders_paid":       c.OrdersPaid.Load(),
		"orders_failed":     c.OrdersFailed.Load(),
		"claims_rejected":   c.ClaimsRejected.Load(),
		"repeat_deliveries": c.RepeatDeliveries.Load(),
	}
}
