package entity

// Sale is a single line item on an order: one product, its quantity and the
// money amounts. SalesID is generated by the store.
type Sale struct {
	SalesID   int64   `json:"salesId"`   // Auto-increment primary key.
	OrderID   string  `json:"orderId"`   // References Order; removed with its order.
	ProductID string  `json:"productId"` // References Product; removed with its product.
	Sales     float64 `json:"sales"`     // Sale amount.
	Quantity  int     `json:"quantity"`
	Discount  float64 `json:"discount"` // Discount fraction, 0..1.
	Profit    float64 `json:"profit"`
}
