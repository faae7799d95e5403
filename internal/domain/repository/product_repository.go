package repository

import (
	"context"

	"superstore/internal/domain/entity"
)

// ProductPatch carries a partial update for a product.
type ProductPatch struct {
	ProductName *string
	Category    *string
	SubCategory *string
}

// IsEmpty reports whether the patch carries no changes.
func (p ProductPatch) IsEmpty() bool {
	return p == ProductPatch{}
}

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// FindAll retrieves every product in store-native order.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product or ErrProductNotFound.
	FindByID(ctx context.Context, productID string) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update applies the non-nil fields of patch to the product.
	Update(ctx context.Context, productID string, patch ProductPatch) error

	// Delete removes the product; dependent sales are removed by cascade.
	Delete(ctx context.Context, productID string) error
}
