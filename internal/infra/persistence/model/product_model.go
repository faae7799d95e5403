package model

// ProductModel is the GORM-specific struct for the 'products' table. The
// has-many association puts a foreign key on sales, so removing a product
// removes its line items.
type ProductModel struct {
	ProductID   string `gorm:"column:product_id;type:varchar(32);primaryKey"`
	ProductName string `gorm:"column:product_name;type:varchar(255);not null"`
	Category    string `gorm:"column:category;type:varchar(64);not null"`
	SubCategory string `gorm:"column:sub_category;type:varchar(64);not null"`

	Sales []SaleModel `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
