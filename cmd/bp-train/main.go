package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/trainer"
	"github.com/bp-predictor/bp-ui/util"
)

var (
	// configuration variables
	flagDataPath     string  = util.DefaultDataPath
	flagModelPath    string  = util.DefaultModelPath
	flagTestFraction float64 = util.DefaultTestFraction
	flagSeed         int     = util.DefaultSeed
	flagImputeScope  string  = util.DefaultImputeScope
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Cannot load .env file:", err)
	}

	flag.StringVar(&flagDataPath, "data", util.LookupEnvOrString(util.DataPathEnvVar, flagDataPath), "Path to the csv dataset.")
	flag.StringVar(&flagModelPath, "model", util.LookupEnvOrString(util.ModelPathEnvVar, flagModelPath), "Where to write the trained model.")
	flag.Float64Var(&flagTestFraction, "test-fraction", util.LookupEnvOrFloat(util.TestFractionEnvVar, flagTestFraction), "Share of rows held out for evaluation.")
	flag.IntVar(&flagSeed, "seed", util.LookupEnvOrInt(util.SeedEnvVar, flagSeed), "Seed for the train/test shuffle.")
	flag.StringVar(&flagImputeScope, "impute-scope", util.LookupEnvOrString(util.ImputeScopeEnvVar, flagImputeScope), "Rows used for mean imputation: 'train' or 'all'.")
	flag.Parse()

	lvl, err := util.ParseLogLevel(util.LookupEnvOrString(util.LogLevel, "INFO"))
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(lvl)

	scope, err := trainer.ParseImputeScope(flagImputeScope)
	if err != nil {
		log.Fatal(err)
	}

	report, err := trainer.Train(trainer.Config{
		DataPath:     flagDataPath,
		ModelPath:    flagModelPath,
		TestFraction: flagTestFraction,
		Seed:         int64(flagSeed),
		ImputeScope:  scope,
	})
	if err != nil {
		log.Fatal("Cannot train model: ", err)
	}

	fmt.Println("Rows\t\t:", report.Rows)
	fmt.Println("Train rows\t:", report.TrainRows)
	fmt.Println("Test rows\t:", report.TestRows)
	fmt.Println("Imputed cells\t:", report.Imputed)
	fmt.Printf("Test MSE\t: %.4f\n", report.Test.MSE)
	fmt.Printf("Test R2\t\t: %.4f\n", report.Test.R2)
	fmt.Printf("Intercept\t: %.6f\n", report.Model.Intercept())
	for i, c := range report.Model.Coefficients() {
		fmt.Printf("%-30s: %.6f\n", model.FeatureColumns[i], c)
	}
	fmt.Println("Model trained and saved to", flagModelPath)
}
