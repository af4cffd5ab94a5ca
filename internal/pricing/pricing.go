// Package pricing computes order totals from resolved line items.
// The computation is pure: identical inputs always produce identical
// totals, so a persisted total can be re-derived for auditing.
package pricing

import (
	"github.com/rajneesh-anand/geenia-api/internal/catalog"

	"github.com/shopspring/decimal"
)

// ShippingRule is a step function of the subtotal: orders strictly
// above FreeAbove ship free, everything else pays FlatFee.
type ShippingRule struct {
	FreeAbove decimal.Decimal
	FlatFee   decimal.Decimal
}

type Totals struct {
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
	Currency    string
}

type Calculator struct {
	rule     ShippingRule
	currency string
}

func NewCalculator(rule ShippingRule, currency string) *Calculator {
	return &Calculator{rule: rule, currency: currency}
}

// ComputeTotal sums the exact per-item extensions, rounds once at the
// end to two places, then applies the shipping rule to the rounded
// subtotal.
func (c *Calculator) ComputeTotal(items []catalog.ResolvedLineItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = subtotal.Round(2)

	fee := c.rule.FlatFee.Round(2)
	if subtotal.GreaterThan(c.rule.FreeAbove) {
		fee = decimal.Zero
	}

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
		Currency:    c.currency,
	}
}

// TotalMinorUnits converts the total into the gateway's integer minor
// currency units (e.g. paise for INR).
func (t Totals) TotalMinorUnits() int64 {
	return t.Total.Mul(decimal.NewFromInt(100)).IntPart()
}
