package catalog

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64
	Slug      string
	Category  string
	Name      string
	Price     decimal.Decimal
	SalePrice decimal.Decimal
	Status    string
}

// LineItem is a client-requested product reference and quantity.
// The price is never part of the client input.
type LineItem struct {
	Slug     string
	Category string
	Quantity int
}

// ResolvedLineItem carries the authoritative unit price looked up at
// resolution time.
type ResolvedLineItem struct {
	Slug      string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// EffectivePrice returns the price a buyer actually pays: the sale
// price when one is set below the list price, else the list price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice.IsPositive() && p.SalePrice.LessThan(p.Price) {
		return p.SalePrice
	}
	return p.Price
}
