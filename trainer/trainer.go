// Package trainer fits the blood pressure regression model from a csv dataset
// and writes the artifact the web app loads at startup.
package trainer

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/predictor"
)

// Config for one training run
type Config struct {
	DataPath     string
	ModelPath    string
	TestFraction float64
	Seed         int64
	ImputeScope  ImputeScope
}

// Report summarizes a training run
type Report struct {
	Rows      int
	TrainRows int
	TestRows  int
	Imputed   int
	Means     []float64
	Test      Metrics
	Model     *predictor.LinearModel
}

// Train reads cfg.DataPath, fits a model and saves it to cfg.ModelPath
func Train(cfg Config) (*Report, error) {
	f, err := os.Open(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open dataset: %w", err)
	}
	defer f.Close()

	report, err := TrainFrom(f, cfg)
	if err != nil {
		return nil, err
	}

	if err := predictor.Save(cfg.ModelPath, report.Model); err != nil {
		return nil, err
	}
	log.Infof("Saved model to %s", cfg.ModelPath)
	return report, nil
}

// TrainFrom fits a model from csv data without touching the filesystem
func TrainFrom(r io.Reader, cfg Config) (*Report, error) {
	columns := append(append([]string(nil), model.FeatureColumns...), model.TargetColumn)
	ds, err := ReadCSV(r, columns)
	if err != nil {
		return nil, err
	}

	trainIdx, testIdx, err := Split(len(ds.Rows), cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}
	trainRows := ds.Select(trainIdx)
	testRows := ds.Select(testIdx)

	// with ImputeAll the test rows also feed the means
	meanRows := trainRows
	if cfg.ImputeScope == ImputeAll {
		meanRows = ds.Rows
	}
	means, err := ColumnMeans(meanRows, columns)
	if err != nil {
		return nil, err
	}
	imputed := Impute(trainRows, means) + Impute(testRows, means)

	trainX, trainY := splitTarget(trainRows)
	testX, testY := splitTarget(testRows)

	fitted, err := Fit(trainX, trainY)
	if err != nil {
		return nil, err
	}

	metrics, err := Evaluate(fitted, testX, testY)
	if err != nil {
		return nil, err
	}
	log.Infof("Trained on %d rows, tested on %d rows: mse=%.4f r2=%.4f", len(trainRows), len(testRows), metrics.MSE, metrics.R2)

	return &Report{
		Rows:      len(ds.Rows),
		TrainRows: len(trainRows),
		TestRows:  len(testRows),
		Imputed:   imputed,
		Means:     means,
		Test:      metrics,
		Model:     fitted,
	}, nil
}

// splitTarget separates the trailing target column from the features
func splitTarget(rows [][]float64) ([][]float64, []float64) {
	X := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, row := range rows {
		last := len(row) - 1
		X[i] = row[:last]
		y[i] = row[last]
	}
	return X, y
}
