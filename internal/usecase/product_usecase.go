package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// productUsecase is the implementation of the ProductUsecase interface.
type productUsecase struct {
	productRepo domain.ProductRepository
	logger      *slog.Logger
}

// NewProductUsecase creates a new ProductUsecase instance.
func NewProductUsecase(productRepo domain.ProductRepository, logger *slog.Logger) domain.ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List returns products, optionally filtered by exact brand or
// category. Brand takes precedence when both are given.
func (u *productUsecase) List(ctx context.Context, brand, category string) ([]*entity.Product, error) {
	switch {
	case brand != "":
		return u.productRepo.GetByBrand(ctx, brand)
	case category != "":
		return u.productRepo.GetByCategory(ctx, category)
	default:
		return u.productRepo.GetAll(ctx)
	}
}

// Get returns one product or a not-found error.
func (u *productUsecase) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// Create inserts a new product.
func (u *productUsecase) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	product.ID = 0

	created, err := u.productRepo.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	u.logger.Info("product created", "product_id", created.ID, "name", created.Name)
	return created, nil
}

// Update overwrites the product stored under id. The target row must
// exist; updating an unknown id is a not-found error, not an insert.
func (u *productUsecase) Update(ctx context.Context, id int64, product *entity.Product) (*entity.Product, error) {
	if _, err := u.productRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	product.ID = id
	updated, err := u.productRepo.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	u.logger.Info("product updated", "product_id", id)
	return updated, nil
}

// Delete removes a product or returns a not-found error.
func (u *productUsecase) Delete(ctx context.Context, id int64) error {
	found, err := u.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !found {
		return domain.NewNotFoundError("product", fmt.Sprintf("%d", id))
	}

	u.logger.Info("product deleted", "product_id", id)
	return nil
}
