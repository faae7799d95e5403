// Package entity contains the core business objects of the project.
package entity

// Customer represents a buyer in the superstore dataset. The ID is the
// dataset's own string key (e.g. "CG-12520"), not a generated surrogate.
type Customer struct {
	CustomerID   string `json:"customerId"`   // Primary key.
	CustomerName string `json:"customerName"` // Display name.
	Segment      string `json:"segment"`      // Market segment (Consumer, Corporate, Home Office).
	Country      string `json:"country"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Region       string `json:"region"`
}
