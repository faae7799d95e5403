package model

import "time"

// RawDataModel is the GORM-specific struct for the 'raw_data' staging table.
// It mirrors the superstore CSV one-to-one: no primary key, no foreign keys,
// no uniqueness. Import loads here first; normalization reads from here.
type RawDataModel struct {
	RowID        int       `gorm:"column:row_id;not null"`
	OrderID      string    `gorm:"column:order_id;type:varchar(32);not null"`
	OrderDate    time.Time `gorm:"column:order_date;type:date;not null"`
	ShipDate     time.Time `gorm:"column:ship_date;type:date;not null"`
	ShipMode     string    `gorm:"column:ship_mode;type:varchar(64);not null"`
	CustomerID   string    `gorm:"column:customer_id;type:varchar(32);not null"`
	CustomerName string    `gorm:"column:customer_name;type:varchar(255);not null"`
	Segment      string    `gorm:"column:segment;type:varchar(64);not null"`
	Country      string    `gorm:"column:country;type:varchar(128);not null"`
	City         string    `gorm:"column:city;type:varchar(128);not null"`
	State        string    `gorm:"column:state;type:varchar(128);not null"`
	PostalCode   string    `gorm:"column:postal_code;type:varchar(16);not null"`
	Region       string    `gorm:"column:region;type:varchar(64);not null"`
	ProductID    string    `gorm:"column:product_id;type:varchar(32);not null"`
	Category     string    `gorm:"column:category;type:varchar(64);not null"`
	SubCategory  string    `gorm:"column:sub_category;type:varchar(64);not null"`
	ProductName  string    `gorm:"column:product_name;type:varchar(255);not null"`
	Sales        float64   `gorm:"column:sales;type:numeric;not null"`
	Quantity     int       `gorm:"column:quantity;not null"`
	Discount     float64   `gorm:"column:discount;type:numeric;not null"`
	Profit       float64   `gorm:"column:profit;type:numeric;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RawDataModel) TableName() string {
	return "raw_data"
}
