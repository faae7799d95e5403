package usecase

import (
	"context"

	"superstore/internal/domain/entity"
)

// AnalyticsUsecase exposes the three dashboard reports. Monetary totals are
// rounded to cents before they leave this layer.
type AnalyticsUsecase interface {
	// OrderQuantityByProduct returns the top products by units sold,
	// descending, at most the repository's configured limit.
	OrderQuantityByProduct(ctx context.Context) ([]*entity.ProductQuantity, error)

	// SalesByCategory returns total sales per product category, descending.
	SalesByCategory(ctx context.Context) ([]*entity.CategorySales, error)

	// SalesOverTime returns total sales per calendar month, ascending.
	SalesOverTime(ctx context.Context) ([]*entity.MonthlySales, error)
}
