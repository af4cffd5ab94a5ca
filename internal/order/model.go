package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
	StatusFailed  Status = "FAILED"
)

// Customer carries the contact and shipping fields captured at
// checkout. Authentication of the customer is not this core's concern.
type Customer struct {
	Name    string
	Email   string
	Mobile  string
	Address string
	Pincode string
}

// Order is the durable record of a checkout attempt. Totals are fixed
// at creation from the resolved line items; confirmation never
// re-prices. Orders are never deleted by this core.
type Order struct {
	ID          int64
	OrderNumber string
	Name        string
	Email       string
	Mobile      string
	Address     string
	Pincode     string
	Amount      decimal.Decimal
	ShippingFee decimal.Decimal
	TotalAmount decimal.Decimal
	Currency    string
	ItemsJSON   string
	Status      Status
	PaymentRef  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
