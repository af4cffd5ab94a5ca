package catalog

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	GetForCheckout(ctx context.Context, slug, category string) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetForCheckout(ctx context.Context, slug, category string) (*Product, error) {
	query := `
		SELECT id, slug, category, name, price, sale_price, status
		FROM products
		WHERE slug = $1 AND status = 'Active'
	`
	args := []any{slug}

	// Slugs may repeat across categories; the category narrows the match.
	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}

	var p Product
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Slug,
		&p.Category,
		&p.Name,
		&p.Price,
		&p.SalePrice,
		&p.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
