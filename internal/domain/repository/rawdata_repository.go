package repository

import (
	"context"

	"superstore/internal/domain/entity"
)

// RawDataRepository is the staging-table contract used by the importer.
// The table is append-only scratch space; it never feeds the live API.
type RawDataRepository interface {
	// BulkInsert appends rows to the staging table in batches.
	BulkInsert(ctx context.Context, rows []*entity.RawDataRow) error

	// FindAll retrieves every staged row for normalization.
	FindAll(ctx context.Context) ([]*entity.RawDataRow, error)

	// Count reports the number of staged rows.
	Count(ctx context.Context) (int64, error)

	// Truncate empties the staging table.
	Truncate(ctx context.Context) error
}
