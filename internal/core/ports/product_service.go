package ports

import (
	"context"

	"github.com/adventureworks/catalog-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a new product.
type CreateProductInput struct {
	Name              string
	ProductNumber     string
	StandardCost      float64
	ListPrice         float64
	Weight            float64
	ProductCategoryID int64
}

// ProductPatch is a partial update: nil fields are left untouched on the
// stored product. Every product attribute is non-nullable, so "absent" is the
// only skippable state a field can take.
type ProductPatch struct {
	Name              *string
	ProductNumber     *string
	StandardCost      *float64
	ListPrice         *float64
	Weight            *float64
	ProductCategoryID *int64
}

// Apply merges the present fields of the patch onto p.
func (pp ProductPatch) Apply(p *domain.Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.ProductNumber != nil {
		p.ProductNumber = *pp.ProductNumber
	}
	if pp.StandardCost != nil {
		p.StandardCost = *pp.StandardCost
	}
	if pp.ListPrice != nil {
		p.ListPrice = *pp.ListPrice
	}
	if pp.Weight != nil {
		p.Weight = *pp.Weight
	}
	if pp.ProductCategoryID != nil {
		p.ProductCategoryID = *pp.ProductCategoryID
	}
}

// ProductService defines use-case operations for products. Actor identifies
// the authenticated caller for the audit trail.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput, actor string) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch ProductPatch, actor string) (*domain.Product, error)
	Delete(ctx context.Context, id int64, actor string) error
}
