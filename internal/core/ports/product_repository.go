package ports

import (
	"context"

	"github.com/adventureworks/catalog-api/internal/core/domain"
)

// ProductRepository defines the persistence operations for products. Every
// mutating call runs inside its own transaction; Update performs the
// load-merge-save cycle atomically by invoking apply on the stored row.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, apply func(p *domain.Product) error) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
