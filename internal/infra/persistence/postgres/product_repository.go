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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindAll retrieves every product in store-native order.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a single product by its key.
func (repo *productRepository) FindByID(ctx context.Context, productID string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateKey.WithDetails("product already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required product field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update applies the non-nil fields of patch to the product row.
func (repo *productRepository) Update(ctx context.Context, productID string, patch repository.ProductPatch) error {
	columns := productPatchColumns(patch)
	if len(columns) == 0 {
		return repo.exists(ctx, productID)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("product_id = ?", productID).
		Updates(columns)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("product field must not be null")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// Delete removes the product; its sale line items cascade away.
func (repo *productRepository) Delete(ctx context.Context, productID string) error {
	result := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) exists(ctx context.Context, productID string) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check product existence")
	}

	if count == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func productPatchColumns(patch repository.ProductPatch) map[string]any {
	columns := make(map[string]any)
	if patch.ProductName != nil {
		columns["product_name"] = *patch.ProductName
	}
	if patch.Category != nil {
		columns["category"] = *patch.Category
	}
	if patch.SubCategory != nil {
		columns["sub_category"] = *patch.SubCategory
	}

	return columns
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Category:    data.Category,
		SubCategory: data.SubCategory,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Category:    data.Category,
		SubCategory: data.SubCategory,
	}
}
