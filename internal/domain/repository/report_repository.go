package repository

import (
	"context"

	"superstore/internal/domain/entity"
)

// TopProductLimit caps the order-quantity report at the highest-volume
// products; the dashboard chart shows at most this many bars.
const TopProductLimit = 20

// ReportRepository defines the read-only aggregation queries behind the
// analytics endpoints. Each call is a single grouped query; there is no
// partial result; a failing query fails the whole report.
type ReportRepository interface {
	// OrderQuantityByProduct sums quantity per product across all sales,
	// descending by total with product ID as tie-break, capped at
	// TopProductLimit groups.
	OrderQuantityByProduct(ctx context.Context) ([]*entity.ProductQuantity, error)

	// SalesByCategory sums the sale amount per product category across all
	// sales joined to their products, descending by total.
	SalesByCategory(ctx context.Context) ([]*entity.CategorySales, error)

	// SalesOverTime sums the sale amount per calendar month of the owning
	// order's date, ascending by month.
	SalesOverTime(ctx context.Context) ([]*entity.MonthlySales, error)
}
