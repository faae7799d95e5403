package usecase

import (
	"context"

	"superstore/internal/domain/entity"
)

// ImportSummary reports what a normalization pass produced.
type ImportSummary struct {
	StagedRows int64 `json:"stagedRows"`
	Customers  int   `json:"customers"`
	Products   int   `json:"products"`
	Orders     int   `json:"orders"`
	Sales      int   `json:"sales"`
}

// ImportUsecase drives the CSV import pipeline: stage the denormalized rows
// first, then project them into the four live tables.
type ImportUsecase interface {
	// Stage appends raw rows to the staging table.
	Stage(ctx context.Context, rows []*entity.RawDataRow) error

	// Normalize projects the staged rows into customers, products, orders
	// and sales. Customers, products and orders are deduplicated by key;
	// rows whose key already exists in the live tables are skipped.
	Normalize(ctx context.Context) (*ImportSummary, error)

	// Reset empties the staging table.
	Reset(ctx context.Context) error
}
