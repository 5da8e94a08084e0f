package domain

import (
	"errors"
	"strings"
	"testing"
)

func validProduct() Product {
	return Product{
		Name:              "Mountain Bike",
		ProductNumber:     "BK-M68B-38",
		StandardCost:      1200.50,
		ListPrice:         2100.00,
		Weight:            12.3,
		ProductCategoryID: 5,
	}
}

func TestProduct_Validate_Valid(t *testing.T) {
	p := validProduct()
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid product, got %v", err)
	}
}

func TestProduct_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Product)
		want   string
	}{
		{"empty name", func(p *Product) { p.Name = "" }, "name"},
		{"name too long", func(p *Product) { p.Name = strings.Repeat("x", 101) }, "name"},
		{"empty product number", func(p *Product) { p.ProductNumber = "" }, "product_number"},
		{"product number too long", func(p *Product) { p.ProductNumber = strings.Repeat("x", 51) }, "product_number"},
		{"zero standard cost", func(p *Product) { p.StandardCost = 0 }, "standard_cost"},
		{"negative list price", func(p *Product) { p.ListPrice = -1 }, "list_price"},
		{"list price below cost", func(p *Product) { p.ListPrice = p.StandardCost }, "list_price must be greater than standard_cost"},
		{"zero weight", func(p *Product) { p.Weight = 0 }, "weight"},
		{"zero category", func(p *Product) { p.ProductCategoryID = 0 }, "product_category_id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)

			err := p.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected message containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Abcdef12", true},
		{"Str0ngPassword", true},
		{"short1A", false},       // too short
		{"abcdefg1", false},      // no uppercase
		{"ABCDEFG1", false},      // no lowercase
		{"Abcdefgh", false},      // no digit
	}

	for _, tc := range tests {
		err := ValidatePassword(tc.password)
		if tc.valid && err != nil {
			t.Errorf("ValidatePassword(%q) = %v, expected nil", tc.password, err)
		}
		if !tc.valid {
			if err == nil {
				t.Errorf("ValidatePassword(%q) = nil, expected error", tc.password)
			} else if !errors.Is(err, ErrValidation) {
				t.Errorf("ValidatePassword(%q) not wrapped in ErrValidation: %v", tc.password, err)
			}
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername("al"); err == nil {
		t.Fatalf("expected error for short username")
	}
	if err := ValidateUsername(strings.Repeat("a", 51)); err == nil {
		t.Fatalf("expected error for long username")
	}
	if err := ValidateUsername("alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
