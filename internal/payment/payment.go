package payment

import (
	"context"
)

// Intent is the ephemeral handle returned by the gateway for an
// authorized amount awaiting completion. It is never persisted beyond
// the order's payment reference.
type Intent struct {
	IntentID    string
	AmountMinor int64
	Currency    string
	Receipt     string
}

// ConfirmationClaim is the caller's assertion that payment succeeded.
// Nothing in it is trusted until the signature verifies.
type ConfirmationClaim struct {
	IntentID    string
	PaymentID   string
	Signature   string
	OrderNumber string
}

type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency, receipt string) (*Intent, error)
}
