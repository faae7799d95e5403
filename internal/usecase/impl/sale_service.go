package impl

import (
	"context"
	"fmt"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
	"superstore/internal/usecase"
)

type saleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService creates a new sale service instance
func NewSaleService(saleRepo repository.SaleRepository) usecase.SaleUsecase {
	return &saleService{
		saleRepo: saleRepo,
	}
}

func (s *saleService) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return sales, nil
}

func (s *saleService) GetSale(ctx context.Context, salesID int64) (*entity.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, salesID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	return sale, nil
}

func (s *saleService) CreateSale(ctx context.Context, sale *entity.Sale) error {
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	return nil
}

func (s *saleService) UpdateSale(ctx context.Context, salesID int64, patch repository.SalePatch) error {
	if err := s.saleRepo.Update(ctx, salesID, patch); err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}

	return nil
}

func (s *saleService) DeleteSale(ctx context.Context, salesID int64) error {
	if err := s.saleRepo.Delete(ctx, salesID); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	return nil
}
