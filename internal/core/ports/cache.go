package ports

import (
	"context"

	"github.com/adventureworks/catalog-api/internal/core/domain"
)

// ProductCache is a best-effort read-through cache for single products.
// Implementations swallow backend errors: a failing cache degrades to a miss,
// never to a failed request.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*domain.Product, bool)
	Set(ctx context.Context, p *domain.Product)
	Invalidate(ctx context.Context, id int64)
}
