// Package impl contains the concrete use-case services.
package impl

import (
	"context"
	"fmt"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
	"superstore/internal/usecase"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(customerRepo repository.CustomerRepository) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
	}
}

// ListCustomers returns every customer.
func (s *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// GetCustomer returns one customer by key.
func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// CreateCustomer inserts a new customer.
func (s *customerService) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// UpdateCustomer applies a partial update.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, patch repository.CustomerPatch) error {
	if err := s.customerRepo.Update(ctx, customerID, patch); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// DeleteCustomer removes a customer; the store cascades to orders and sales.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
