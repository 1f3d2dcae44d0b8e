package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// productRepository is the GORM implementation of ProductRepository.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

// GetAll returns every product in storage order.
func (r *productRepository) GetAll(ctx context.Context) ([]*entity.Product, error) {
	var models []ProductModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return toProductEntities(models)
}

// GetByID returns one product or a not-found error.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var m ProductModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("product", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}
	return toProductEntity(&m)
}

// GetByBrand returns the products of one brand.
func (r *productRepository) GetByBrand(ctx context.Context, brand string) ([]*entity.Product, error) {
	var models []ProductModel
	if err := r.db.WithContext(ctx).Where("brand = ?", brand).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list products by brand: %w", err)
	}
	return toProductEntities(models)
}

// GetByCategory returns the products of one category.
func (r *productRepository) GetByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	var models []ProductModel
	if err := r.db.WithContext(ctx).Where("category = ?", category).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return toProductEntities(models)
}

// Save upserts a product. A set ID overwrites the stored row in place;
// an unset ID inserts a new row and assigns its ID.
func (r *productRepository) Save(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	m := ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Brand:       product.Brand,
		Category:    product.Category,
		Size:        product.Size,
		Color:       product.Color,
		Price:       product.Price,
		Stock:       product.Stock,
		Description: product.Description,
	}

	if product.ID > 0 {
		// Full-record replace keyed by id; partial updates are never
		// exposed in the contract.
		if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	} else {
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
	}

	return toProductEntity(&m)
}

// Delete removes a product, reporting whether a row existed.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&ProductModel{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete product: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
