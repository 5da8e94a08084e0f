package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product is a catalog entry priced for sale.
type Product struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	ProductNumber     string    `json:"product_number"`
	StandardCost      float64   `json:"standard_cost"`
	ListPrice         float64   `json:"list_price"`
	Weight            float64   `json:"weight"`
	ProductCategoryID int64     `json:"product_category_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Violations returns every invariant the product currently breaks, in field
// order. An empty slice means the product is valid.
func (p *Product) Violations() []string {
	var v []string

	if n := len(p.Name); n < 1 || n > 100 {
		v = append(v, "name must be between 1 and 100 characters")
	}
	if n := len(p.ProductNumber); n < 1 || n > 50 {
		v = append(v, "product_number must be between 1 and 50 characters")
	}
	if p.StandardCost <= 0 {
		v = append(v, "standard_cost must be greater than 0")
	}
	if p.ListPrice <= 0 {
		v = append(v, "list_price must be greater than 0")
	}
	if p.StandardCost > 0 && p.ListPrice > 0 && p.ListPrice <= p.StandardCost {
		v = append(v, "list_price must be greater than standard_cost")
	}
	if p.Weight <= 0 {
		v = append(v, "weight must be greater than 0")
	}
	if p.ProductCategoryID <= 0 {
		v = append(v, "product_category_id must be greater than 0")
	}

	return v
}

// Validate returns an ErrValidation-wrapped error listing every violated
// invariant, or nil when the product is valid.
func (p *Product) Validate() error {
	if v := p.Violations(); len(v) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(v, "; "))
	}
	return nil
}
