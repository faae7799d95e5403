package usecase

import (
	"context"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
)

// SaleUsecase defines the sale line-item operations behind the
// /sales resource.
type SaleUsecase interface {
	ListSales(ctx context.Context) ([]*entity.Sale, error)
	GetSale(ctx context.Context, salesID int64) (*entity.Sale, error)
	CreateSale(ctx context.Context, sale *entity.Sale) error
	UpdateSale(ctx context.Context, salesID int64, patch repository.SalePatch) error
	DeleteSale(ctx context.Context, salesID int64) error
}
