package entity

import "testing"

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name    string
		product string
		price   float64
		stock   int
		wantErr bool
	}{
		{name: "valid product", product: "Air Zoom Pegasus", price: 120, stock: 5, wantErr: false},
		{name: "zero stock is valid", product: "Ultraboost 21", price: 150, stock: 0, wantErr: false},
		{name: "empty name", product: "", price: 100, stock: 1, wantErr: true},
		{name: "blank name", product: "   ", price: 100, stock: 1, wantErr: true},
		{name: "zero price", product: "Suede Classic", price: 0, stock: 1, wantErr: true},
		{name: "negative price", product: "Suede Classic", price: -80, stock: 1, wantErr: true},
		{name: "negative stock", product: "Suede Classic", price: 80, stock: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct(0, tt.product, "Nike", "Running", "42", "Negro", tt.price, tt.stock, "")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected validation error, got product %+v", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name != tt.product {
				t.Errorf("expected name %q, got %q", tt.product, p.Name)
			}
		})
	}
}

func TestProductIsAvailable(t *testing.T) {
	inStock, err := NewProduct(0, "Air Zoom Pegasus", "Nike", "Running", "42", "Negro", 120, 5, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inStock.IsAvailable() {
		t.Error("expected product with stock 5 to be available")
	}

	soldOut, err := NewProduct(0, "Ultraboost 21", "Adidas", "Running", "41", "Blanco", 150, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if soldOut.IsAvailable() {
		t.Error("expected product with stock 0 to not be available")
	}
}
