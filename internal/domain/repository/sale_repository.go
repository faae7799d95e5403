package repository

import (
	"context"

	"superstore/internal/domain/entity"
)

// SalePatch carries a partial update for a sale line item.
type SalePatch struct {
	OrderID   *string
	ProductID *string
	Sales     *float64
	Quantity  *int
	Discount  *float64
	Profit    *float64
}

// IsEmpty reports whether the patch carries no changes.
func (p SalePatch) IsEmpty() bool {
	return p == SalePatch{}
}

// SaleRepository defines the persistence contract for sale line items.
type SaleRepository interface {
	// FindAll retrieves every sale in store-native order.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// FindByID retrieves a single sale or ErrSaleNotFound.
	FindByID(ctx context.Context, salesID int64) (*entity.Sale, error)

	// Create persists a new sale and fills in the generated SalesID.
	// Order and product references must exist.
	Create(ctx context.Context, sale *entity.Sale) error

	// Update applies the non-nil fields of patch to the sale.
	Update(ctx context.Context, salesID int64, patch SalePatch) error

	// Delete removes the sale.
	Delete(ctx context.Context, salesID int64) error
}
