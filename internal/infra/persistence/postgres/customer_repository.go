// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindAll retrieves every customer in store-native order.
func (repo *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// FindByID retrieves a single customer by its key.
func (repo *customerRepository) FindByID(ctx context.Context, customerID string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateKey.WithDetails("customer already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required customer field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	return nil
}

// Update applies the non-nil fields of patch to the customer row.
func (repo *customerRepository) Update(ctx context.Context, customerID string, patch repository.CustomerPatch) error {
	columns := customerPatchColumns(patch)
	if len(columns) == 0 {
		// No-change touch: verify the row exists and leave it alone.
		return repo.exists(ctx, customerID)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("customer_id = ?", customerID).
		Updates(columns)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("customer field must not be null")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// Delete removes the customer; orders and their sales go with it via the
// store's cascade rules.
func (repo *customerRepository) Delete(ctx context.Context, customerID string) error {
	result := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CustomerModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) exists(ctx context.Context, customerID string) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check customer existence")
	}

	if count == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// customerPatchColumns maps each set patch field to its column. Explicit
// per-field mapping keeps unset fields out of the UPDATE entirely.
func customerPatchColumns(patch repository.CustomerPatch) map[string]any {
	columns := make(map[string]any)
	if patch.CustomerName != nil {
		columns["customer_name"] = *patch.CustomerName
	}
	if patch.Segment != nil {
		columns["segment"] = *patch.Segment
	}
	if patch.Country != nil {
		columns["country"] = *patch.Country
	}
	if patch.City != nil {
		columns["city"] = *patch.City
	}
	if patch.State != nil {
		columns["state"] = *patch.State
	}
	if patch.PostalCode != nil {
		columns["postal_code"] = *patch.PostalCode
	}
	if patch.Region != nil {
		columns["region"] = *patch.Region
	}

	return columns
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		CustomerID:   data.CustomerID,
		CustomerName: data.CustomerName,
		Segment:      data.Segment,
		Country:      data.Country,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Region:       data.Region,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		CustomerID:   data.CustomerID,
		CustomerName: data.CustomerName,
		Segment:      data.Segment,
		Country:      data.Country,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Region:       data.Region,
	}
}
