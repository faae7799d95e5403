package entity

// RawDataRow is one denormalized line of the superstore CSV as it lands in
// the raw_data staging table. It carries no constraints and is never served
// by the CRUD or analytics endpoints; it exists only so the importer can
// load first and normalize afterwards.
type RawDataRow struct {
	RowID        int     `json:"rowId"`
	OrderID      string  `json:"orderId"`
	OrderDate    Date    `json:"orderDate"`
	ShipDate     Date    `json:"shipDate"`
	ShipMode     string  `json:"shipMode"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Segment      string  `json:"segment"`
	Country      string  `json:"country"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postalCode"`
	Region       string  `json:"region"`
	ProductID    string  `json:"productId"`
	Category     string  `json:"category"`
	SubCategory  string  `json:"subCategory"`
	ProductName  string  `json:"productName"`
	Sales        float64 `json:"sales"`
	Quantity     int     `json:"quantity"`
	Discount     float64 `json:"discount"`
	Profit       float64 `json:"profit"`
}

// Customer projects the customer columns of the row.
func (r *RawDataRow) Customer() Customer {
	return Customer{
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Segment:      r.Segment,
		Country:      r.Country,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
		Region:       r.Region,
	}
}

// Product projects the product columns of the row.
func (r *RawDataRow) Product() Product {
	return Product{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Category:    r.Category,
		SubCategory: r.SubCategory,
	}
}

// Order projects the order header columns of the row.
func (r *RawDataRow) Order() Order {
	return Order{
		OrderID:    r.OrderID,
		OrderDate:  r.OrderDate,
		ShipDate:   r.ShipDate,
		ShipMode:   r.ShipMode,
		CustomerID: r.CustomerID,
	}
}

// Sale projects the line item columns of the row.
func (r *RawDataRow) Sale() Sale {
	return Sale{
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Sales:     r.Sales,
		Quantity:  r.Quantity,
		Discount:  r.Discount,
		Profit:    r.Profit,
	}
}
