package usecase

import (
	"context"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
)

// ProductUsecase defines the product table operations behind the
// /products resource.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) error
	UpdateProduct(ctx context.Context, productID string, patch repository.ProductPatch) error
	DeleteProduct(ctx context.Context, productID string) error
}
