package impl

import (
	"context"
	"fmt"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
	"superstore/internal/usecase"
)

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repository.OrderRepository) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
	}
}

func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *orderService) CreateOrder(ctx context.Context, order *entity.Order) error {
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID string, patch repository.OrderPatch) error {
	if err := s.orderRepo.Update(ctx, orderID, patch); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
