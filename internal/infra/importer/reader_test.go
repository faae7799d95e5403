package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"superstore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Row ID,Order ID,Order Date,Ship Date,Ship Mode,Customer ID,Customer Name,Segment,Country,City,State,Postal Code,Region,Product ID,Category,Sub-Category,Product Name,Sales,Quantity,Discount,Profit
1,CA-2017-152156,11/8/2017,11/11/2017,Second Class,CG-12520,Claire Gute,Consumer,United States,Henderson,Kentucky,42420,South,FUR-BO-10001798,Furniture,Bookcases,Bush Somerset Collection Bookcase,261.96,2,0,41.9136
2,CA-2017-152156,11/8/2017,11/11/2017,Second Class,CG-12520,Claire Gute,Consumer,United States,Henderson,Kentucky,42420,South,FUR-CH-10000454,Furniture,Chairs,"Hon Deluxe Fabric Upholstered Stacking Chairs, Rounded Back",731.94,3,0,219.582
`

func writeSample(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "superstore.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestCSVReader_ReadAll(t *testing.T) {
	reader := NewCSVReader(writeSample(t, sampleCSV))

	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 1, first.RowID)
	assert.Equal(t, "CA-2017-152156", first.OrderID)
	assert.Equal(t, entity.NewDate(2017, time.November, 8), first.OrderDate)
	assert.Equal(t, entity.NewDate(2017, time.November, 11), first.ShipDate)
	assert.Equal(t, "CG-12520", first.CustomerID)
	assert.Equal(t, "42420", first.PostalCode)
	assert.Equal(t, 261.96, first.Sales)
	assert.Equal(t, 2, first.Quantity)

	// Quoted product names with embedded commas stay one field.
	assert.Equal(t, "Hon Deluxe Fabric Upholstered Stacking Chairs, Rounded Back", rows[1].ProductName)
}

func TestCSVReader_ReadAll_ISODates(t *testing.T) {
	csv := `Row ID,Order ID,Order Date,Ship Date,Ship Mode,Customer ID,Customer Name,Segment,Country,City,State,Postal Code,Region,Product ID,Category,Sub-Category,Product Name,Sales,Quantity,Discount,Profit
1,CA-2017-152156,2017-11-08,2017-11-11,Second Class,CG-12520,Claire Gute,Consumer,United States,Henderson,Kentucky,42420,South,FUR-BO-10001798,Furniture,Bookcases,Bush Somerset Collection Bookcase,261.96,2,0,41.9136
`
	reader := NewCSVReader(writeSample(t, csv))

	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.NewDate(2017, time.November, 8), rows[0].OrderDate)
}

func TestCSVReader_ReadAll_ShortRecord(t *testing.T) {
	csv := `Row ID,Order ID,Order Date
1,CA-2017-152156,11/8/2017
`
	reader := NewCSVReader(writeSample(t, csv))

	_, err := reader.ReadAll()
	require.Error(t, err)
}

func TestCSVReader_ReadAll_MissingFile(t *testing.T) {
	reader := NewCSVReader(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := reader.ReadAll()
	require.Error(t, err)
}

func TestCSVReader_ReadAll_BadQuantity(t *testing.T) {
	csv := `Row ID,Order ID,Order Date,Ship Date,Ship Mode,Customer ID,Customer Name,Segment,Country,City,State,Postal Code,Region,Product ID,Category,Sub-Category,Product Name,Sales,Quantity,Discount,Profit
1,CA-2017-152156,11/8/2017,11/11/2017,Second Class,CG-12520,Claire Gute,Consumer,United States,Henderson,Kentucky,42420,South,FUR-BO-10001798,Furniture,Bookcases,Bush Somerset Collection Bookcase,261.96,two,0,41.9136
`
	reader := NewCSVReader(writeSample(t, csv))

	_, err := reader.ReadAll()
	require.Error(t, err)
}
