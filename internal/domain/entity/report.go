package entity

// ProductQuantity is one group of the order-quantity report: total units
// sold for a product across all line items.
type ProductQuantity struct {
	ProductID     string `json:"productId"`
	TotalQuantity int64  `json:"totalQuantity"`
}

// CategorySales is one group of the sales-by-category report.
type CategorySales struct {
	Category   string  `json:"category"`
	TotalSales float64 `json:"totalSales"`
}

// MonthlySales is one group of the sales-over-time report. Month is a
// calendar month key in YYYY-MM form.
type MonthlySales struct {
	Month      string  `json:"month"`
	TotalSales float64 `json:"totalSales"`
}
