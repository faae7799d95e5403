package entity

// Order is the order header: dates, ship mode and the owning customer.
// Line items live in Sale rows keyed by OrderID.
type Order struct {
	OrderID    string `json:"orderId"` // Primary key (e.g. "CA-2017-152156").
	OrderDate  Date   `json:"orderDate"`
	ShipDate   Date   `json:"shipDate"`
	ShipMode   string `json:"shipMode"`
	CustomerID string `json:"customerId"` // References Customer; deleting the customer removes the order.
}
