package model

// SaleModel is the GORM-specific struct for the 'sales' table. Both foreign
// keys are declared by the parent models' has-many associations, so a line
// item cascades away with its order or product.
type SaleModel struct {
	SalesID   int64   `gorm:"column:sales_id;primaryKey;autoIncrement"`
	OrderID   string  `gorm:"column:order_id;type:varchar(32);not null;index"`
	ProductID string  `gorm:"column:product_id;type:varchar(32);not null;index"`
	Sales     float64 `gorm:"column:sales;type:numeric;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
	Discount  float64 `gorm:"column:discount;type:numeric;not null"`
	Profit    float64 `gorm:"column:profit;type:numeric;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}
