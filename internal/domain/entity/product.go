package entity

// Product represents a catalog item referenced by sale line items.
type Product struct {
	ProductID   string `json:"productId"` // Primary key (e.g. "FUR-BO-10001798").
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
}
