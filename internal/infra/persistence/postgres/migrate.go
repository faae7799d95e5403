package postgres

import (
	"superstore/internal/errors"
	"superstore/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the five tables. The four normalized tables
// carry their foreign keys with ON DELETE CASCADE; raw_data is constraint-free
// staging space.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.CustomerModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.SaleModel{},
		&model.RawDataModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	return nil
}
