package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrStatusConflict    = errors.New("order status conflict")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	ErrPersistence       = errors.New("order persistence failed")
)
