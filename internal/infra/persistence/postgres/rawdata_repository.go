package postgres

import (
	"context"

	"superstore/config"
	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	"superstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultInsertBatchSize = 500

// rawDataRepository implements the repository.RawDataRepository interface.
type rawDataRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewRawDataRepository is the constructor for rawDataRepository.
func NewRawDataRepository(db *gorm.DB, cfg *config.Config) repository.RawDataRepository {
	batchSize := defaultInsertBatchSize
	if cfg != nil && cfg.Import != nil && cfg.Import.BatchSize > 0 {
		batchSize = cfg.Import.BatchSize
	}

	return &rawDataRepository{
		db:        db,
		batchSize: batchSize,
	}
}

// BulkInsert appends rows to the staging table in batches.
func (repo *rawDataRepository) BulkInsert(ctx context.Context, rows []*entity.RawDataRow) error {
	if len(rows) == 0 {
		return nil
	}

	rawModels := make([]*model.RawDataModel, 0, len(rows))
	for _, row := range rows {
		rawModels = append(rawModels, fromRawDataDomain(row))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(rawModels, repo.batchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert raw data rows")
	}

	return nil
}

// FindAll retrieves every staged row.
func (repo *rawDataRepository) FindAll(ctx context.Context) ([]*entity.RawDataRow, error) {
	var rawModels []*model.RawDataModel

	if err := repo.db.WithContext(ctx).Find(&rawModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list raw data rows")
	}

	rows := make([]*entity.RawDataRow, 0, len(rawModels))
	for _, rawM := range rawModels {
		rows = append(rows, toRawDataDomain(rawM))
	}

	return rows, nil
}

// Count reports the number of staged rows.
func (repo *rawDataRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RawDataModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count raw data rows")
	}

	return count, nil
}

// Truncate empties the staging table.
func (repo *rawDataRepository) Truncate(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Exec("DELETE FROM raw_data").Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to truncate raw data table")
	}

	return nil
}

// --- Mapper Functions ---

func toRawDataDomain(data *model.RawDataModel) *entity.RawDataRow {
	if data == nil {
		return nil
	}

	return &entity.RawDataRow{
		RowID:        data.RowID,
		OrderID:      data.OrderID,
		OrderDate:    entity.DateOf(data.OrderDate),
		ShipDate:     entity.DateOf(data.ShipDate),
		ShipMode:     data.ShipMode,
		CustomerID:   data.CustomerID,
		CustomerName: data.CustomerName,
		Segment:      data.Segment,
		Country:      data.Country,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Region:       data.Region,
		ProductID:    data.ProductID,
		Category:     data.Category,
		SubCategory:  data.SubCategory,
		ProductName:  data.ProductName,
		Sales:        data.Sales,
		Quantity:     data.Quantity,
		Discount:     data.Discount,
		Profit:       data.Profit,
	}
}

func fromRawDataDomain(data *entity.RawDataRow) *model.RawDataModel {
	if data == nil {
		return nil
	}

	return &model.RawDataModel{
		RowID:        data.RowID,
		OrderID:      data.OrderID,
		OrderDate:    data.OrderDate.Time(),
		ShipDate:     data.ShipDate.Time(),
		ShipMode:     data.ShipMode,
		CustomerID:   data.CustomerID,
		CustomerName: data.CustomerName,
		Segment:      data.Segment,
		Country:      data.Country,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Region:       data.Region,
		ProductID:    data.ProductID,
		Category:     data.Category,
		SubCategory:  data.SubCategory,
		ProductName:  data.ProductName,
		Sales:        data.Sales,
		Quantity:     data.Quantity,
		Discount:     data.Discount,
		Profit:       data.Profit,
	}
}
