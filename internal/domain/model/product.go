// Package model defines the core domain entities for the quote service.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidProduct is returned when a product has an empty code or negative amounts.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrDuplicateProduct is returned when two catalog products share a code.
	ErrDuplicateProduct = errors.New("duplicate product code")
)

// Product is an immutable catalog entry.
//
// @Description Catalog product with public price and reward points per unit
type Product struct {
	// Code is the short unique product code, e.g. "OP"
	Code string `json:"code" example:"OP"`
	// Name is the display name
	Name string `json:"name" example:"OPC 95 PLUS"`
	// PricePublic is the list price in MXN for the public tier
	PricePublic decimal.Decimal `json:"price_public" swaggertype:"string" example:"490"`
	// Points is the reward points earned per unit
	Points decimal.Decimal `json:"points" swaggertype:"string" example:"19.4"`
}

// Validate checks the product invariants.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Code) == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidProduct)
	}
	if p.PricePublic.IsNegative() {
		return fmt.Errorf("%w: %s has negative price", ErrInvalidProduct, p.Code)
	}
	if p.Points.IsNegative() {
		return fmt.Errorf("%w: %s has negative points", ErrInvalidProduct, p.Code)
	}
	return nil
}

// Catalog is an ordered, read-only set of products indexed by code.
type Catalog struct {
	products []Product
	index    map[string]int
}

// NewCatalog builds a catalog preserving the given order.
func NewCatalog(products []Product) (Catalog, error) {
	c := Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, exists := c.index[p.Code]; exists {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.Code)
		}
		c.index[p.Code] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Products returns a copy of the catalog in display order.
func (c Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup finds a product by code.
func (c Catalog) Lookup(code string) (Product, bool) {
	i, ok := c.index[code]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c Catalog) Len() int {
	return len(c.products)
}

// Filter returns the products whose code or name contains term, ignoring case.
// An empty term matches every product.
func (c Catalog) Filter(term string) []Product {
	if term == "" {
		return c.Products()
	}
	needle := strings.ToLower(term)
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Code), needle) ||
			strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
