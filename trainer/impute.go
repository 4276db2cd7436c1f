package trainer

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// ImputeScope picks which rows the imputation means are computed from
type ImputeScope string

const (
	// ImputeTrain uses the training partition only
	ImputeTrain ImputeScope = "train"
	// ImputeAll uses every row before the split, test rows included
	ImputeAll ImputeScope = "all"
)

func ParseImputeScope(s string) (ImputeScope, error) {
	switch ImputeScope(strings.ToLower(s)) {
	case "", ImputeTrain:
		return ImputeTrain, nil
	case ImputeAll:
		return ImputeAll, nil
	default:
		return "", fmt.Errorf("unknown imputation scope %q", s)
	}
}

// ColumnMeans returns the mean of every column, skipping NaN cells
func ColumnMeans(rows [][]float64, columns []string) ([]float64, error) {
	means := make([]float64, len(columns))
	values := make([]float64, 0, len(rows))
	for j := range columns {
		values = values[:0]
		for _, row := range rows {
			if !math.IsNaN(row[j]) {
				values = append(values, row[j])
			}
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("column %s has no values to impute from", columns[j])
		}
		means[j] = stat.Mean(values, nil)
	}
	return means, nil
}

// Impute replaces NaN cells in place with the column mean
func Impute(rows [][]float64, means []float64) int {
	filled := 0
	for _, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) {
				row[j] = means[j]
				filled++
			}
		}
	}
	return filled
}
