package dto

import (
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// ProductResponse is the wire shape of a catalog product.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

// ProductRequest is the write payload for create and update.
type ProductRequest struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

// ToEntity converts the payload into a validated product. The entity
// constructor owns the validation rules.
func (r *ProductRequest) ToEntity() (*entity.Product, error) {
	return entity.NewProduct(0, r.Name, r.Brand, r.Category, r.Size, r.Color, r.Price, r.Stock, r.Description)
}

// FromProductEntity converts a domain product to its wire shape.
func FromProductEntity(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Size:        p.Size,
		Color:       p.Color,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
	}
}

// FromProductEntities converts a product slice, never returning nil so
// empty catalogs serialize as [].
func FromProductEntities(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProductEntity(p))
	}
	return out
}
