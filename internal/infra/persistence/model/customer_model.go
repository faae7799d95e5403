package model

// CustomerModel is the GORM-specific struct for the 'customers' table.
// The dataset's own customer code is the primary key. The has-many
// association puts the foreign key on orders with ON DELETE CASCADE, so
// removing a customer removes their orders at the store level.
type CustomerModel struct {
	CustomerID   string `gorm:"column:customer_id;type:varchar(32);primaryKey"`
	CustomerName string `gorm:"column:customer_name;type:varchar(255);not null"`
	Segment      string `gorm:"column:segment;type:varchar(64);not null"`
	Country      string `gorm:"column:country;type:varchar(128);not null"`
	City         string `gorm:"column:city;type:varchar(128);not null"`
	State        string `gorm:"column:state;type:varchar(128);not null"`
	PostalCode   string `gorm:"column:postal_code;type:varchar(16);not null"`
	Region       string `gorm:"column:region;type:varchar(64);not null"`

	Orders []OrderModel `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
