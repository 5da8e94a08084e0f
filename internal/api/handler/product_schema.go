package handler

import "time"

// --- Request / Response types ---

type createProductRequest struct {
	Name              string  `json:"name"                validate:"required,min=1,max=100"`
	ProductNumber     string  `json:"product_number"      validate:"required,min=1,max=50"`
	StandardCost      float64 `json:"standard_cost"       validate:"required,gt=0"`
	ListPrice         float64 `json:"list_price"          validate:"required,gt=0,gtfield=StandardCost"`
	Weight            float64 `json:"weight"              validate:"required,gt=0"`
	ProductCategoryID int64   `json:"product_category_id" validate:"required,gt=0"`
}

// updateProductRequest is the partial-update payload: nil fields keep the
// stored value. Merged invariants are re-checked by the domain layer, so the
// tags here only bound the fields that are present.
type updateProductRequest struct {
	Name              *string  `json:"name"                validate:"omitempty,min=1,max=100"`
	ProductNumber     *string  `json:"product_number"      validate:"omitempty,min=1,max=50"`
	StandardCost      *float64 `json:"standard_cost"       validate:"omitempty,gt=0"`
	ListPrice         *float64 `json:"list_price"          validate:"omitempty,gt=0"`
	Weight            *float64 `json:"weight"              validate:"omitempty,gt=0"`
	ProductCategoryID *int64   `json:"product_category_id" validate:"omitempty,gt=0"`
}

type productResponse struct {
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

type deleteProductResponse struct {
	Message string `json:"message"`
}
