// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"superstore/internal/domain/entity"
)

// CustomerPatch carries a partial update for a customer. Only non-nil
// fields are written; the explicit field-by-field mapping keeps an omitted
// JSON key from ever clobbering a stored value.
type CustomerPatch struct {
	CustomerName *string
	Segment      *string
	Country      *string
	City         *string
	State        *string
	PostalCode   *string
	Region       *string
}

// IsEmpty reports whether the patch carries no changes.
func (p CustomerPatch) IsEmpty() bool {
	return p == CustomerPatch{}
}

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// FindAll retrieves every customer in store-native order.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// FindByID retrieves a single customer or ErrCustomerNotFound.
	FindByID(ctx context.Context, customerID string) (*entity.Customer, error)

	// Create persists a new customer.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update applies the non-nil fields of patch to the customer.
	// An empty patch succeeds as a no-change touch.
	Update(ctx context.Context, customerID string, patch CustomerPatch) error

	// Delete removes the customer; dependent orders and their sales are
	// removed by the store's cascade rules.
	Delete(ctx context.Context, customerID string) error
}
