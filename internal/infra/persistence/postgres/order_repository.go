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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindAll retrieves every order in store-native order.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByID retrieves a single order by its key.
func (repo *orderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// Create persists a new order. The referenced customer must exist.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateKey.WithDetails("order already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WithDetails("customer does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required order field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// Update applies the non-nil fields of patch to the order row.
func (repo *orderRepository) Update(ctx context.Context, orderID string, patch repository.OrderPatch) error {
	columns := orderPatchColumns(patch)
	if len(columns) == 0 {
		return repo.exists(ctx, orderID)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_id = ?", orderID).
		Updates(columns)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidReference.WithDetails("customer does not exist")
		}
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("order field must not be null")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

// Delete removes the order; its sale line items cascade away.
func (repo *orderRepository) Delete(ctx context.Context, orderID string) error {
	result := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) exists(ctx context.Context, orderID string) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check order existence")
	}

	if count == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func orderPatchColumns(patch repository.OrderPatch) map[string]any {
	columns := make(map[string]any)
	if patch.OrderDate != nil {
		columns["order_date"] = patch.OrderDate.Time()
	}
	if patch.ShipDate != nil {
		columns["ship_date"] = patch.ShipDate.Time()
	}
	if patch.ShipMode != nil {
		columns["ship_mode"] = *patch.ShipMode
	}
	if patch.CustomerID != nil {
		columns["customer_id"] = *patch.CustomerID
	}

	return columns
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		OrderID:    data.OrderID,
		OrderDate:  entity.DateOf(data.OrderDate),
		ShipDate:   entity.DateOf(data.ShipDate),
		ShipMode:   data.ShipMode,
		CustomerID: data.CustomerID,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		OrderID:    data.OrderID,
		OrderDate:  data.OrderDate.Time(),
		ShipDate:   data.ShipDate.Time(),
		ShipMode:   data.ShipMode,
		CustomerID: data.CustomerID,
	}
}
