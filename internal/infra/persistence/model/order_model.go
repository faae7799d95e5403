package model

import "time"

// OrderModel is the GORM-specific struct for the 'orders' table. Its own
// has-many association puts the foreign key on sales, so line items cascade
// away with their order.
type OrderModel struct {
	OrderID    string    `gorm:"column:order_id;type:varchar(32);primaryKey"`
	OrderDate  time.Time `gorm:"column:order_date;type:date;not null"`
	ShipDate   time.Time `gorm:"column:ship_date;type:date;not null"`
	ShipMode   string    `gorm:"column:ship_mode;type:varchar(64);not null"`
	CustomerID string    `gorm:"column:customer_id;type:varchar(32);not null;index"`

	Sales []SaleModel `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
