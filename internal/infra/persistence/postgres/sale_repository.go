package postgres

import (
	"context"

	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	"superstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// FindAll retrieves every sale in store-native order.
func (repo *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel

	if err := repo.db.WithContext(ctx).Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// FindByID retrieves a single sale by its generated key.
func (repo *saleRepository) FindByID(ctx context.Context, salesID int64) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Where("sales_id = ?", salesID).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&saleM), nil
}

// Create persists a new sale and writes the generated key back into the
// entity. Order and product references must exist.
func (repo *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WithDetails("order or product does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required sale field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.SalesID = saleM.SalesID

	return nil
}

// Update applies the non-nil fields of patch to the sale row.
func (repo *saleRepository) Update(ctx context.Context, salesID int64, patch repository.SalePatch) error {
	columns := salePatchColumns(patch)
	if len(columns) == 0 {
		return repo.exists(ctx, salesID)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("sales_id = ?", salesID).
		Updates(columns)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidReference.WithDetails("order or product does not exist")
		}
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("sale field must not be null")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sale")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrSaleNotFound
	}

	return nil
}

// Delete removes the sale.
func (repo *saleRepository) Delete(ctx context.Context, salesID int64) error {
	result := repo.db.WithContext(ctx).
		Where("sales_id = ?", salesID).
		Delete(&model.SaleModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete sale")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrSaleNotFound
	}

	return nil
}

func (repo *saleRepository) exists(ctx context.Context, salesID int64) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("sales_id = ?", salesID).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check sale existence")
	}

	if count == 0 {
		return domainerrors.ErrSaleNotFound
	}

	return nil
}

func salePatchColumns(patch repository.SalePatch) map[string]any {
	columns := make(map[string]any)
	if patch.OrderID != nil {
		columns["order_id"] = *patch.OrderID
	}
	if patch.ProductID != nil {
		columns["product_id"] = *patch.ProductID
	}
	if patch.Sales != nil {
		columns["sales"] = *patch.Sales
	}
	if patch.Quantity != nil {
		columns["quantity"] = *patch.Quantity
	}
	if patch.Discount != nil {
		columns["discount"] = *patch.Discount
	}
	if patch.Profit != nil {
		columns["profit"] = *patch.Profit
	}

	return columns
}

// --- Mapper Functions ---

func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	return &entity.Sale{
		SalesID:   data.SalesID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Sales:     data.Sales,
		Quantity:  data.Quantity,
		Discount:  data.Discount,
		Profit:    data.Profit,
	}
}

func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	return &model.SaleModel{
		SalesID:   data.SalesID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Sales:     data.Sales,
		Quantity:  data.Quantity,
		Discount:  data.Discount,
		Profit:    data.Profit,
	}
}
