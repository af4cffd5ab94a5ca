package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rajneesh-anand/geenia-api/internal/catalog"
	"github.com/rajneesh-anand/geenia-api/internal/logger"
	"github.com/rajneesh-anand/geenia-api/internal/metrics"
	"github.com/rajneesh-anand/geenia-api/internal/notify"
	"github.com/rajneesh-anand/geenia-api/internal/payment"
	"github.com/rajneesh-anand/geenia-api/internal/pricing"

	"go.uber.org/zap"
)

type CheckoutInput struct {
	Customer Customer
	Items    []catalog.LineItem
}

type CheckoutResult struct {
	OrderNumber string
	IntentID    string
	AmountMinor int64
	Currency    string
}

type Service interface {
	Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
	Confirm(ctx context.Context, claim payment.ConfirmationClaim) error
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
}

type service struct {
	repo     Repository
	resolver catalog.Service
	calc     *pricing.Calculator
	gateway  payment.Gateway
	verifier *payment.Verifier
	events   *notify.Publisher
	stats    *metrics.Checkout
}

func NewService(
	repo Repository,
	resolver catalog.Service,
	calc *pricing.Calculator,
	gateway payment.Gateway,
	verifier *payment.Verifier,
	events *notify.Publisher,
	stats *metrics.Checkout,
) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		calc:     calc,
		gateway:  gateway,
		verifier: verifier,
		events:   events,
		stats:    stats,
	}
}

// Checkout prices the requested items from the catalog, persists a
// PENDING order, then opens a gateway intent for the exact persisted
// amount. The client-supplied body never contains a price.
func (s *service) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Int("item_count", len(in.Items)),
	)

	resolved, err := s.resolver.Resolve(ctx, in.Items)
	if err != nil {
		log.Warn("price resolution failed", zap.Error(err))
		return nil, err
	}

	totals := s.calc.ComputeTotal(resolved)

	snapshot, err := json.Marshal(resolved)
	if err != nil {
		return nil, fmt.Errorf("marshal line items: %w", err)
	}

	o := &Order{
		OrderNumber: NewOrderNumber(),
		Name:        in.Customer.Name,
		Email:       in.Customer.Email,
		Mobile:      in.Customer.Mobile,
		Address:     in.Customer.Address,
		Pincode:     in.Customer.Pincode,
		Amount:      totals.Subtotal,
		ShippingFee: totals.ShippingFee,
		TotalAmount: totals.Total,
		Currency:    totals.Currency,
		ItemsJSON:   string(snapshot),
	}

	log = log.With(zap.String("order_number", o.OrderNumber))

	// Persist before contacting the gateway: on write failure no
	// intent may be opened.
	if err := s.repo.CreatePending(ctx, o); err != nil {
		log.Error("failed to persist pending order", zap.Error(err))
		return nil, err
	}
	s.stats.OrdersCreated.Inc()

	intent, err := s.gateway.CreateIntent(ctx, totals.TotalMinorUnits(), totals.Currency, o.OrderNumber)
	if err != nil {
		// The order stays PENDING; abandoned intents are an accepted
		// failure mode handled by operational cleanup, not rollback.
		s.stats.IntentsFailed.Inc()
		log.Error("gateway intent creation failed, order left pending", zap.Error(err))
		return nil, err
	}

	log.Info("checkout completed",
		zap.String("intent_id", intent.IntentID),
		zap.Int64("amount_minor", intent.AmountMinor),
	)

	return &CheckoutResult{
		OrderNumber: o.OrderNumber,
		IntentID:    intent.IntentID,
		AmountMinor: intent.AmountMinor,
		Currency:    intent.Currency,
	}, nil
}

// Confirm authenticates a confirmation claim and transitions the
// order. Repeat deliveries of an applied confirmation are no-ops; the
// status CAS in the repository serializes racing callbacks.
func (s *service) Confirm(ctx context.Context, claim payment.ConfirmationClaim) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Confirm"),
		zap.String("order_number", claim.OrderNumber),
		zap.String("payment_id", claim.PaymentID),
	)

	o, err := s.repo.FindByOrderNumber(ctx, claim.OrderNumber)
	if err != nil {
		log.Warn("confirmation for unknown order", zap.Error(err))
		return err
	}

	if !s.verifier.Verify(claim) {
		s.stats.ClaimsRejected.Inc()
		log.Warn("signature verification failed", zap.String("status", string(o.Status)))

		if o.Status == StatusPending {
			if err := s.repo.TransitionStatus(ctx, o.OrderNumber, StatusPending, StatusFailed, claim.PaymentID); err != nil {
				log.Error("failed to mark order as failed", zap.Error(err))
			} else {
				s.stats.OrdersFailed.Inc()
				s.publish(o, StatusFailed, claim.PaymentID)
			}
		}
		return ErrSignatureMismatch
	}

	if IsRepeatConfirmation(o, StatusPaid, claim.PaymentID) {
		s.stats.RepeatDeliveries.Inc()
		log.Info("duplicate confirmation, no-op")
		return nil
	}

	if !CanTransition(o.Status, StatusPaid) {
		log.Warn("confirmation conflicts with terminal status", zap.String("status", string(o.Status)))
		return ErrStatusConflict
	}

	err = s.repo.TransitionStatus(ctx, o.OrderNumber, o.Status, StatusPaid, claim.PaymentID)
	if errors.Is(err, ErrStatusConflict) {
		// Lost a race with a concurrent callback; success only if the
		// winning transition applied this same confirmation.
		current, ferr := s.repo.FindByOrderNumber(ctx, claim.OrderNumber)
		if ferr == nil && IsRepeatConfirmation(current, StatusPaid, claim.PaymentID) {
			s.stats.RepeatDeliveries.Inc()
			log.Info("concurrent confirmation already applied, no-op")
			return nil
		}
		return ErrStatusConflict
	}
	if err != nil {
		log.Error("failed to mark order as paid", zap.Error(err))
		return err
	}

	s.stats.OrdersPaid.Inc()
	s.publish(o, StatusPaid, claim.PaymentID)
	log.Info("order marked as paid")

	return nil
}

func (s *service) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.FindByOrderNumber(ctx, orderNumber)
}

func (s *service) publish(o *Order, status Status, paymentRef string) {
	s.events.Publish(notify.OrderEvent{
		OrderNumber: o.OrderNumber,
		Status:      string(status),
		PaymentRef:  paymentRef,
		TotalAmount: o.TotalAmount.StringFixed(2),
		Currency:    o.Currency,
		Email:       o.Email,
	})
}
