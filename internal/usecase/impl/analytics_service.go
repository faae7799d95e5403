package impl

import (
	"context"
	"fmt"
	"math"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
	"superstore/internal/usecase"
)

type analyticsService struct {
	reportRepo repository.ReportRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(reportRepo repository.ReportRepository) usecase.AnalyticsUsecase {
	return &analyticsService{
		reportRepo: reportRepo,
	}
}

// OrderQuantityByProduct returns the top products by units sold.
func (s *analyticsService) OrderQuantityByProduct(ctx context.Context) ([]*entity.ProductQuantity, error) {
	groups, err := s.reportRepo.OrderQuantityByProduct(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order quantity: %w", err)
	}

	return groups, nil
}

// SalesByCategory returns total sales per category, rounded to cents.
func (s *analyticsService) SalesByCategory(ctx context.Context) ([]*entity.CategorySales, error) {
	groups, err := s.reportRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by category: %w", err)
	}

	for _, group := range groups {
		group.TotalSales = roundAmount(group.TotalSales)
	}

	return groups, nil
}

// SalesOverTime returns total sales per month, rounded to cents.
func (s *analyticsService) SalesOverTime(ctx context.Context) ([]*entity.MonthlySales, error) {
	groups, err := s.reportRepo.SalesOverTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales over time: %w", err)
	}

	for _, group := range groups {
		group.TotalSales = roundAmount(group.TotalSales)
	}

	return groups, nil
}

// roundAmount rounds a money amount to 2 decimal places. Summing float
// line amounts accumulates sub-cent noise; the reports present cents.
func roundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}
