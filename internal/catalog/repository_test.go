package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetForCheckout(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "slug", "category", "name", "price", "sale_price", "status",
		}).AddRow(1, "herbal-shampoo", "hair", "Herbal Shampoo", "120.00", "100.00", "Active")

		mock.ExpectQuery(`SELECT id, slug, category, name, price, sale_price, status FROM products WHERE slug = \$1 AND status = 'Active'`).
			WithArgs("herbal-shampoo").
			WillReturnRows(rows)

		p, err := repo.GetForCheckout(ctx, "herbal-shampoo", "")
		require.NoError(t, err)
		assert.Equal(t, "Herbal Shampoo", p.Name)
		assert.Equal(t, "100.00", p.EffectivePrice().StringFixed(2))
	})

	t.Run("WithCategory", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "slug", "category", "name", "price", "sale_price", "status",
		}).AddRow(2, "gift-box", "skincare", "Skincare Gift Box", "450.00", "0", "Active")

		mock.ExpectQuery(`SELECT .* FROM products WHERE slug = \$1 AND status = 'Active' AND category = \$2`).
			WithArgs("gift-box", "skincare").
			WillReturnRows(rows)

		p, err := repo.GetForCheckout(ctx, "gift-box", "skincare")
		require.NoError(t, err)
		assert.Equal(t, "skincare", p.Category)
		assert.Equal(t, "450.00", p.EffectivePrice().StringFixed(2))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products`).
			WithArgs("ghost-product").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetForCheckout(ctx, "ghost-product", "")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products`).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetForCheckout(ctx, "herbal-shampoo", "")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrProductNotFound)
	})
}
