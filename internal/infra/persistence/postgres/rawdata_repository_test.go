package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superstore/internal/domain/entity"
)

func TestRawDataRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewRawDataRepository(db, nil)
	ctx := context.Background()

	rows := []*entity.RawDataRow{
		{
			RowID:     1,
			OrderID:   "CA-2017-152156",
			OrderDate: entity.NewDate(2017, 11, 8),
			ShipDate:  entity.NewDate(2017, 11, 11),
			ShipMode:  "Second Class", CustomerID: "CG-12520", CustomerName: "Claire Gute",
			Segment: "Consumer", Country: "United States", City: "Henderson", State: "Kentucky",
			PostalCode: "42420", Region: "South",
			ProductID: "FUR-BO-10001798", Category: "Furniture", SubCategory: "Bookcases",
			ProductName: "Bush Somerset Collection Bookcase",
			Sales:       261.96, Quantity: 2, Discount: 0, Profit: 41.91,
		},
		{
			RowID:     2,
			OrderID:   "CA-2017-152156",
			OrderDate: entity.NewDate(2017, 11, 8),
			ShipDate:  entity.NewDate(2017, 11, 11),
			ShipMode:  "Second Class", CustomerID: "CG-12520", CustomerName: "Claire Gute",
			Segment: "Consumer", Country: "United States", City: "Henderson", State: "Kentucky",
			PostalCode: "42420", Region: "South",
			ProductID: "FUR-CH-10000454", Category: "Furniture", SubCategory: "Chairs",
			ProductName: "Hon Deluxe Fabric Upholstered Stacking Chairs",
			Sales:       731.94, Quantity: 3, Discount: 0, Profit: 219.58,
		},
	}

	require.NoError(t, repo.BulkInsert(ctx, rows))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	loaded, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, rows[0], loaded[0])

	require.NoError(t, repo.Truncate(ctx))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRawDataRepository_BulkInsert_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := NewRawDataRepository(db, nil)

	require.NoError(t, repo.BulkInsert(context.Background(), nil))
}
