package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	CreatePending(ctx context.Context, o *Order) error
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	TransitionStatus(ctx context.Context, orderNumber string, from, to Status, paymentRef string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePending(ctx context.Context, o *Order) error {
	o.Status = StatusPending

	query := `
		INSERT INTO orders (
			order_number, name, email, mobile, address, pincode,
			amount, shipping_fee, total_amount, currency,
			order_items, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		o.OrderNumber,
		o.Name,
		o.Email,
		o.Mobile,
		o.Address,
		o.Pincode,
		o.Amount,
		o.ShippingFee,
		o.TotalAmount,
		o.Currency,
		o.ItemsJSON,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}

func (r *repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error) {
	query := `
		SELECT id, order_number, name, email, mobile, address, pincode,
			amount, shipping_fee, total_amount, currency,
			order_items, status, payment_ref, created_at, updated_at
		FROM orders
		WHERE order_number = $1
	`

	var o Order
	err := r.db.QueryRowContext(ctx, query, orderNumber).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.Name,
		&o.Email,
		&o.Mobile,
		&o.Address,
		&o.Pincode,
		&o.Amount,
		&o.ShippingFee,
		&o.TotalAmount,
		&o.Currency,
		&o.ItemsJSON,
		&o.Status,
		&o.PaymentRef,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// TransitionStatus applies a compare-and-swap on the current status so
// two racing confirmations for the same order cannot both succeed.
// Zero rows updated means the order is gone or its status moved.
func (r *repository) TransitionStatus(ctx context.Context, orderNumber string, from, to Status, paymentRef string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $3, payment_ref = $4, updated_at = NOW()
		WHERE order_number = $1 AND status = $2
	`, orderNumber, from, to, paymentRef)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if affected == 0 {
		if _, err := r.FindByOrderNumber(ctx, orderNumber); errors.Is(err, ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return ErrStatusConflict
	}

	return nil
}
