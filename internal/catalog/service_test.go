package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetForCheckout(ctx context.Context, slug, category string) (*Product, error) {
	args := m.Called(ctx, slug, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetForCheckout", mock.Anything, "herbal-shampoo", "").Return(&Product{
			Slug:      "herbal-shampoo",
			Name:      "Herbal Shampoo",
			Price:     decimal.RequireFromString("120.00"),
			SalePrice: decimal.RequireFromString("100.00"),
		}, nil)

		resolved, err := svc.Resolve(ctx, []LineItem{{Slug: "herbal-shampoo", Quantity: 2}})
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, 2, resolved[0].Quantity)
		assert.Equal(t, "100.00", resolved[0].UnitPrice.StringFixed(2))
		repo.AssertExpectations(t)
	})

	t.Run("SalePriceIgnoredWhenHigher", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetForCheckout", mock.Anything, "face-cream", "").Return(&Product{
			Slug:      "face-cream",
			Name:      "Face Cream",
			Price:     decimal.RequireFromString("80.00"),
			SalePrice: decimal.RequireFromString("90.00"),
		}, nil)

		resolved, err := svc.Resolve(ctx, []LineItem{{Slug: "face-cream", Quantity: 1}})
		require.NoError(t, err)
		assert.Equal(t, "80.00", resolved[0].UnitPrice.StringFixed(2))
	})

	t.Run("EmptyItems", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Resolve(ctx, nil)
		assert.ErrorIs(t, err, ErrEmptyItems)
		repo.AssertNotCalled(t, "GetForCheckout")
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Resolve(ctx, []LineItem{{Slug: "herbal-shampoo", Quantity: 0}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		repo.AssertNotCalled(t, "GetForCheckout")
	})

	t.Run("AllOrNothing", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetForCheckout", mock.Anything, "herbal-shampoo", "").Return(&Product{
			Slug:  "herbal-shampoo",
			Name:  "Herbal Shampoo",
			Price: decimal.RequireFromString("120.00"),
		}, nil)
		repo.On("GetForCheckout", mock.Anything, "ghost-product", "").Return(nil, ErrProductNotFound)

		_, err := svc.Resolve(ctx, []LineItem{
			{Slug: "herbal-shampoo", Quantity: 1},
			{Slug: "ghost-product", Quantity: 1},
		})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
