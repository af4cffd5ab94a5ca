package catalog

import (
	"context"

	"github.com/rajneesh-anand/geenia-api/internal/logger"

	"go.uber.org/zap"
)

// Service resolves requested line items against the catalog. Resolution
// is all-or-nothing: one unknown product fails the whole request, so a
// partial order can never be priced.
type Service interface {
	Resolve(ctx context.Context, items []LineItem) ([]ResolvedLineItem, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Resolve(ctx context.Context, items []LineItem) ([]ResolvedLineItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Resolve"),
		zap.Int("item_count", len(items)),
	)

	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	resolved := make([]ResolvedLineItem, 0, len(items))

	for i, item := range items {
		logItem := log.With(
			zap.Int("index", i),
			zap.String("slug", item.Slug),
			zap.Int("quantity", item.Quantity),
		)

		if item.Quantity <= 0 {
			logItem.Warn("invalid quantity")
			return nil, ErrInvalidQuantity
		}

		product, err := s.repo.GetForCheckout(ctx, item.Slug, item.Category)
		if err != nil {
			logItem.Error("failed to resolve product", zap.Error(err))
			return nil, err
		}

		resolved = append(resolved, ResolvedLineItem{
			Slug:      product.Slug,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.EffectivePrice(),
		})
	}

	return resolved, nil
}
