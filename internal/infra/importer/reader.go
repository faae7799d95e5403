// Package importer reads the superstore CSV export into staging rows.
package importer

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"superstore/internal/domain/entity"
)

// Expected CSV format:
// Row ID,Order ID,Order Date,Ship Date,Ship Mode,Customer ID,Customer Name,
// Segment,Country,City,State,Postal Code,Region,Product ID,Category,
// Sub-Category,Product Name,Sales,Quantity,Discount,Profit
const columnCount = 21

// CSVReader parses the denormalized superstore export.
type CSVReader struct {
	path string
}

// NewCSVReader creates a reader for the given CSV file path.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// ReadAll loads every data row from the file.
func (r *CSVReader) ReadAll() ([]*entity.RawDataRow, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return r.read(file)
}

func (r *CSVReader) read(src io.Reader) ([]*entity.RawDataRow, error) {
	reader := csv.NewReader(src)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, errors.WithStack(err)
	}

	var rows []*entity.RawDataRow
	lineNum := 1 // Start at 1 because we skipped header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < columnCount {
			return nil, errors.Errorf("invalid csv format at line %d: expected %d columns, got %d", lineNum, columnCount, len(record))
		}

		row, parseErr := parseRow(record, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(record []string, lineNum int) (*entity.RawDataRow, error) {
	rowID, err := strconv.Atoi(record[0])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid row id at line %d", lineNum)
	}

	orderDate, err := parseCSVDate(record[2])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid order date at line %d", lineNum)
	}

	shipDate, err := parseCSVDate(record[3])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid ship date at line %d", lineNum)
	}

	sales, err := strconv.ParseFloat(record[17], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sales amount at line %d", lineNum)
	}

	quantity, err := strconv.Atoi(record[18])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid quantity at line %d", lineNum)
	}

	discount, err := strconv.ParseFloat(record[19], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid discount at line %d", lineNum)
	}

	profit, err := strconv.ParseFloat(record[20], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid profit at line %d", lineNum)
	}

	return &entity.RawDataRow{
		RowID:        rowID,
		OrderID:      record[1],
		OrderDate:    orderDate,
		ShipDate:     shipDate,
		ShipMode:     record[4],
		CustomerID:   record[5],
		CustomerName: record[6],
		Segment:      record[7],
		Country:      record[8],
		City:         record[9],
		State:        record[10],
		PostalCode:   record[11],
		Region:       record[12],
		ProductID:    record[13],
		Category:     record[14],
		SubCategory:  record[15],
		ProductName:  record[16],
		Sales:        sales,
		Quantity:     quantity,
		Discount:     discount,
		Profit:       profit,
	}, nil
}

// parseCSVDate accepts the export's M/D/YYYY form and the ISO form some
// re-exports use.
func parseCSVDate(value string) (entity.Date, error) {
	if date, err := entity.ParseDate(value); err == nil {
		return date, nil
	}

	date, err := entity.ParseSlashDate(value)
	if err != nil {
		return entity.Date{}, err
	}

	return date, nil
}
