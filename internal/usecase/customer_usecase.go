// Package usecase defines the application's use-case interfaces.
package usecase

import (
	"context"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
)

// CustomerUsecase defines the customer table operations behind the
// /customers resource.
type CustomerUsecase interface {
	// ListCustomers returns every customer.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// GetCustomer returns one customer by key.
	GetCustomer(ctx context.Context, customerID string) (*entity.Customer, error)

	// CreateCustomer inserts a new customer.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// UpdateCustomer applies a partial update; an empty patch is a
	// successful no-op touch.
	UpdateCustomer(ctx context.Context, customerID string, patch repository.CustomerPatch) error

	// DeleteCustomer removes a customer and, through the store's cascade,
	// its orders and their sales.
	DeleteCustomer(ctx context.Context, customerID string) error
}
