package handler

import (
	"github.com/adventureworks/catalog-api/internal/core/domain"
	"github.com/adventureworks/catalog-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:              req.Name,
		ProductNumber:     req.ProductNumber,
		StandardCost:      req.StandardCost,
		ListPrice:         req.ListPrice,
		Weight:            req.Weight,
		ProductCategoryID: req.ProductCategoryID,
	}
}

func toPatch(req updateProductRequest) ports.ProductPatch {
	return ports.ProductPatch{
		Name:              req.Name,
		ProductNumber:     req.ProductNumber,
		StandardCost:      req.StandardCost,
		ListPrice:         req.ListPrice,
		Weight:            req.Weight,
		ProductCategoryID: req.ProductCategoryID,
	}
}

// --- Domain → HTTP response ---

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:                p.ID,
		Name:              p.Name,
		ProductNumber:     p.ProductNumber,
		StandardCost:      p.StandardCost,
		ListPrice:         p.ListPrice,
		Weight:            p.Weight,
		ProductCategoryID: p.ProductCategoryID,
		CreatedAt:         p.CreatedAt.UTC(),
		UpdatedAt:         p.UpdatedAt.UTC(),
	}
}

func toProductListResponse(items []domain.Product) []productResponse {
	out := make([]productResponse, len(items))
	for i := range items {
		out[i] = toProductResponse(&items[i])
	}
	return out
}
