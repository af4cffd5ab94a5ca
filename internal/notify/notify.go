// Package notify decouples post-payment side effects (confirmation
// email, push) from the payment-critical path. The order service
// publishes an event after a successful transition; a consumer drains
// the buffer on its own goroutine so a slow notifier can never block
// or fail a confirmation.
package notify

import (
	"context"

	"github.com/rajneesh-anand/geenia-api/internal/logger"

	"go.uber.org/zap"
)

type OrderEvent struct {
	OrderNumber string
	Status      string
	PaymentRef  string
	TotalAmount string
	Currency    string
	Email       string
}

// Notifier is the outbound collaborator contract. The real email
// sender lives outside this core; LogNotifier stands in for it.
type Notifier interface {
	Notify(ctx context.Context, ev OrderEvent) error
}

type Publisher struct {
	events chan OrderEvent
}

func NewPublisher(buffer int) *Publisher {
	return &Publisher{events: make(chan OrderEvent, buffer)}
}

// Publish never blocks; when the buffer is full the event is dropped
// with a warning. Notification is best-effort by contract.
func (p *Publisher) Publish(ev OrderEvent) {
	select {
	case p.events <- ev:
	default:
		logger.L().Warn("order event buffer full, dropping event",
			zap.String("order_number", ev.OrderNumber),
			zap.String("status", ev.Status),
		)
	}
}

// Run consumes events until ctx is cancelled. Notifier errors are
// logged and swallowed; the order state is already durable.
func (p *Publisher) Run(ctx context.Context, n Notifier) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-p.events:
			if err := n.Notify(ctx, ev); err != nil {
				logger.L().Error("notifier failed",
					zap.String("order_number", ev.OrderNumber),
					zap.Error(err),
				)
			}
		}
	}
}

type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, ev OrderEvent) error {
	logger.L().Info("order event",
		zap.String("order_number", ev.OrderNumber),
		zap.String("status", ev.Status),
		zap.String("payment_ref", ev.PaymentRef),
		zap.String("total", ev.TotalAmount),
	)
	return nil
}
