package postgres

import (
	"context"
	"sort"

	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	"superstore/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
// Each report is one grouped query; nothing is cached between calls.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// productQuantityRow receives one group of the order-quantity query.
type productQuantityRow struct {
	ProductID     string
	TotalQuantity int64
}

// categorySalesRow receives one group of the sales-by-category query.
type categorySalesRow struct {
	Category   string
	TotalSales float64
}

// dailySalesRow receives one group of the per-date sales query. The Date
// scanner absorbs whatever the driver hands back for a DATE column.
type dailySalesRow struct {
	OrderDate entity.Date
	Total     float64
}

// OrderQuantityByProduct sums quantity per product over all sales, highest
// totals first. Product ID breaks ties so the ranking is deterministic.
func (repo *reportRepository) OrderQuantityByProduct(ctx context.Context) ([]*entity.ProductQuantity, error) {
	var rows []productQuantityRow

	if err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("product_id, SUM(quantity) AS total_quantity").
		Group("product_id").
		Order("total_quantity DESC, product_id ASC").
		Limit(repository.TopProductLimit).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.ErrAggregationFailed.WrapMessage("order quantity by product query failed")
	}

	result := make([]*entity.ProductQuantity, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.ProductQuantity{
			ProductID:     row.ProductID,
			TotalQuantity: row.TotalQuantity,
		})
	}

	return result, nil
}

// SalesByCategory joins sales to products and sums the sale amount per
// category, highest totals first.
func (repo *reportRepository) SalesByCategory(ctx context.Context) ([]*entity.CategorySales, error) {
	var rows []categorySalesRow

	if err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("products.category AS category, SUM(sales.sales) AS total_sales").
		Joins("INNER JOIN products ON products.product_id = sales.product_id").
		Group("products.category").
		Order("total_sales DESC, products.category ASC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.ErrAggregationFailed.WrapMessage("sales by category query failed")
	}

	result := make([]*entity.CategorySales, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.CategorySales{
			Category:   row.Category,
			TotalSales: row.TotalSales,
		})
	}

	return result, nil
}

// SalesOverTime joins orders to their sales and sums the sale amount per
// calendar month of the order date, ascending. SQL groups by the stored
// civil date; the month fold happens here on the date's own year and month
// so no timezone conversion can move a date across a month boundary.
func (repo *reportRepository) SalesOverTime(ctx context.Context) ([]*entity.MonthlySales, error) {
	var rows []dailySalesRow

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("orders.order_date AS order_date, SUM(sales.sales) AS total").
		Joins("INNER JOIN sales ON sales.order_id = orders.order_id").
		Group("orders.order_date").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.ErrAggregationFailed.WrapMessage("sales over time query failed")
	}

	byMonth := make(map[string]float64, len(rows))
	for _, row := range rows {
		byMonth[row.OrderDate.MonthKey()] += row.Total
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	// YYYY-MM keys sort chronologically as plain strings.
	sort.Strings(months)

	result := make([]*entity.MonthlySales, 0, len(months))
	for _, month := range months {
		result = append(result, &entity.MonthlySales{
			Month:      month,
			TotalSales: byMonth[month],
		})
	}

	return result, nil
}
