package trainer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// MissingMarker is the cell value the dataset uses for an unknown measurement
const MissingMarker = "?"

var (
	ErrMissingColumn = errors.New("column not found in csv header")
	ErrEmptyDataset  = errors.New("dataset has no rows")
)

// Dataset holds the selected columns of a csv file. Missing cells are NaN.
type Dataset struct {
	Columns []string
	Rows    [][]float64
}

// ReadCSV reads a header line and then keeps only the named columns, in the given order
func ReadCSV(r io.Reader, columns []string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	positions := make([]int, len(columns))
	for i, name := range columns {
		p, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		positions[i] = p
	}

	ds := &Dataset{Columns: columns}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read csv line %d: %w", line, err)
		}

		row := make([]float64, len(columns))
		for i, p := range positions {
			cell := strings.TrimSpace(record[p])
			if cell == "" || cell == MissingMarker {
				row[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, columns[i], err)
			}
			row[i] = v
		}
		ds.Rows = append(ds.Rows, row)
	}

	if len(ds.Rows) == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

// Select returns the rows at idx. Row slices are shared with the dataset.
func (ds *Dataset) Select(idx []int) [][]float64 {
	rows := make([][]float64, len(idx))
	for i, j := range idx {
		rows[i] = ds.Rows[j]
	}
	return rows
}
