package repository

import (
	"context"

	"superstore/internal/domain/entity"
)

// OrderPatch carries a partial update for an order header.
type OrderPatch struct {
	OrderDate  *entity.Date
	ShipDate   *entity.Date
	ShipMode   *string
	CustomerID *string
}

// IsEmpty reports whether the patch carries no changes.
func (p OrderPatch) IsEmpty() bool {
	return p == OrderPatch{}
}

// OrderRepository defines the persistence contract for order headers.
type OrderRepository interface {
	// FindAll retrieves every order in store-native order.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves a single order or ErrOrderNotFound.
	FindByID(ctx context.Context, orderID string) (*entity.Order, error)

	// Create persists a new order. The customer reference must exist.
	Create(ctx context.Context, order *entity.Order) error

	// Update applies the non-nil fields of patch to the order.
	Update(ctx context.Context, orderID string, patch OrderPatch) error

	// Delete removes the order; its sale line items are removed by cascade.
	Delete(ctx context.Context, orderID string) error
}
