package impl

import (
	"context"
	"fmt"
	"log/slog"

	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	"superstore/internal/errors"
	"superstore/internal/usecase"
)

type importService struct {
	rawRepo      repository.RawDataRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	saleRepo     repository.SaleRepository
	logger       *slog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(
	rawRepo repository.RawDataRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	saleRepo repository.SaleRepository,
	logger *slog.Logger,
) usecase.ImportUsecase {
	return &importService{
		rawRepo:      rawRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		saleRepo:     saleRepo,
		logger:       logger,
	}
}

// Stage appends raw rows to the staging table.
func (s *importService) Stage(ctx context.Context, rows []*entity.RawDataRow) error {
	if err := s.rawRepo.BulkInsert(ctx, rows); err != nil {
		return fmt.Errorf("failed to stage raw rows: %w", err)
	}

	return nil
}

// Normalize projects the staged rows into the four live tables. Parent
// entities are deduplicated in memory first so each key is inserted once;
// keys already present in the live tables are skipped. Sale line items are
// appended as-is, since the staging table has no line-item identity to
// dedupe on.
func (s *importService) Normalize(ctx context.Context) (*usecase.ImportSummary, error) {
	rows, err := s.rawRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged rows: %w", err)
	}

	summary := &usecase.ImportSummary{StagedRows: int64(len(rows))}

	customers := make(map[string]entity.Customer)
	products := make(map[string]entity.Product)
	orders := make(map[string]entity.Order)
	// Preserve first-seen order so inserts follow the CSV.
	var customerKeys, productKeys, orderKeys []string

	for _, row := range rows {
		if _, ok := customers[row.CustomerID]; !ok {
			customers[row.CustomerID] = row.Customer()
			customerKeys = append(customerKeys, row.CustomerID)
		}
		if _, ok := products[row.ProductID]; !ok {
			products[row.ProductID] = row.Product()
			productKeys = append(productKeys, row.ProductID)
		}
		if _, ok := orders[row.OrderID]; !ok {
			orders[row.OrderID] = row.Order()
			orderKeys = append(orderKeys, row.OrderID)
		}
	}

	for _, key := range customerKeys {
		customer := customers[key]
		created, err := s.createIgnoringDuplicate(func() error {
			return s.customerRepo.Create(ctx, &customer)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert customer %s: %w", key, err)
		}
		if created {
			summary.Customers++
		}
	}

	for _, key := range productKeys {
		product := products[key]
		created, err := s.createIgnoringDuplicate(func() error {
			return s.productRepo.Create(ctx, &product)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert product %s: %w", key, err)
		}
		if created {
			summary.Products++
		}
	}

	for _, key := range orderKeys {
		order := orders[key]
		created, err := s.createIgnoringDuplicate(func() error {
			return s.orderRepo.Create(ctx, &order)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert order %s: %w", key, err)
		}
		if created {
			summary.Orders++
		}
	}

	for _, row := range rows {
		sale := row.Sale()
		if err := s.saleRepo.Create(ctx, &sale); err != nil {
			return nil, fmt.Errorf("failed to insert sale for order %s: %w", row.OrderID, err)
		}
		summary.Sales++
	}

	s.logger.Info("normalization complete",
		slog.Int64("stagedRows", summary.StagedRows),
		slog.Int("customers", summary.Customers),
		slog.Int("products", summary.Products),
		slog.Int("orders", summary.Orders),
		slog.Int("sales", summary.Sales),
	)

	return summary, nil
}

// Reset empties the staging table.
func (s *importService) Reset(ctx context.Context) error {
	if err := s.rawRepo.Truncate(ctx); err != nil {
		return fmt.Errorf("failed to reset staging table: %w", err)
	}

	return nil
}

// createIgnoringDuplicate runs an insert and swallows duplicate-key
// rejections so reruns of normalize are idempotent for parent entities.
func (s *importService) createIgnoringDuplicate(create func() error) (bool, error) {
	if err := create(); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateKey) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
