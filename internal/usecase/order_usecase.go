package usecase

import (
	"context"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
)

// OrderUsecase defines the order table operations behind the
// /orders resource.
type OrderUsecase interface {
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order) error
	UpdateOrder(ctx context.Context, orderID string, patch repository.OrderPatch) error
	DeleteOrder(ctx context.Context, orderID string) error
}
