package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"superstore/internal/domain/entity"
	"superstore/internal/domain/repository"
)

// newTestDB opens an in-memory store with the full schema. Foreign keys are
// switched on so the cascade rules behave like the production store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see an empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, Migrate(db))

	return db
}

// repoFixtures bundles all repositories over one test database.
type repoFixtures struct {
	db        *gorm.DB
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	sales     repository.SaleRepository
	reports   repository.ReportRepository
}

func newRepoFixtures(t *testing.T) repoFixtures {
	t.Helper()

	db := newTestDB(t)

	return repoFixtures{
		db:        db,
		customers: NewCustomerRepository(db),
		products:  NewProductRepository(db),
		orders:    NewOrderRepository(db),
		sales:     NewSaleRepository(db),
		reports:   NewReportRepository(db),
	}
}

func testCustomer(customerID string) *entity.Customer {
	return &entity.Customer{
		CustomerID:   customerID,
		CustomerName: "Claire Gute",
		Segment:      "Consumer",
		Country:      "United States",
		City:         "Henderson",
		State:        "Kentucky",
		PostalCode:   "42420",
		Region:       "South",
	}
}

func testProduct(productID, category string) *entity.Product {
	return &entity.Product{
		ProductID:   productID,
		ProductName: "Bush Somerset Collection Bookcase",
		Category:    category,
		SubCategory: "Bookcases",
	}
}

func testOrder(orderID, customerID string, orderDate entity.Date) *entity.Order {
	return &entity.Order{
		OrderID:    orderID,
		OrderDate:  orderDate,
		ShipDate:   orderDate,
		ShipMode:   "Second Class",
		CustomerID: customerID,
	}
}

// seedChain inserts one customer, one product and one order so sale line
// items can reference them.
func (fx repoFixtures) seedChain(t *testing.T, ctx context.Context, customerID, productID, orderID string) {
	t.Helper()

	require.NoError(t, fx.customers.Create(ctx, testCustomer(customerID)))
	require.NoError(t, fx.products.Create(ctx, testProduct(productID, "Furniture")))
	require.NoError(t, fx.orders.Create(ctx, testOrder(orderID, customerID, entity.NewDate(2017, 11, 8))))
}
