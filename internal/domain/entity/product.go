package entity

import "strings"

// Product is a sellable catalog item. A zero ID means the product has
// not been persisted yet; the repository assigns the ID on insert.
type Product struct {
	ID          int64
	Name        string
	Brand       string
	Category    string
	Size        string
	Color       string
	Price       float64
	Stock       int
	Description string
}

// NewProduct builds a validated product: name must be non-blank, price
// positive, stock non-negative.
func NewProduct(id int64, name, brand, category, size, color string, price float64, stock int, description string) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("product name must not be empty")
	}
	if price <= 0 {
		return nil, newValidationError("product price must be > 0")
	}
	if stock < 0 {
		return nil, newValidationError("product stock must not be negative")
	}

	return &Product{
		ID:          id,
		Name:        name,
		Brand:       brand,
		Category:    category,
		Size:        size,
		Color:       color,
		Price:       price,
		Stock:       stock,
		Description: description,
	}, nil
}

// IsAvailable reports whether the product can be sold right now.
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}
