package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyItems      = errors.New("no line items supplied")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)
