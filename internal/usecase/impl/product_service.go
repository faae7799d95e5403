package impl

import (
	"context"
	"fmt"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
	"superstore/internal/usecase"
)

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *entity.Product) error {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, patch repository.ProductPatch) error {
	if err := s.productRepo.Update(ctx, productID, patch); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
