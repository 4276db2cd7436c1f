package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gopkg.in/go-playground/validator.v9"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/predictor"
)

type predictionResponse struct {
	Success     bool            `json:"success"`
	Score       float64         `json:"score"`
	Label       model.RiskLabel `json:"label"`
	Description string          `json:"description"`
}

func renderPredict(c echo.Context, status int, metrics model.PatientMetrics, result predictor.Result, errMsg string) error {
	return c.Render(status, "predict.html", map[string]interface{}{
		"baseData": model.BaseData{CurrentUser: currentUser(c)},
		"fields":   model.FieldSpecs,
		"values":   metrics.FormValues(),
		"result":   result,
		"error":    errMsg,
	})
}

// PredictPage handler shows the form with default values and no result
func PredictPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderPredict(c, http.StatusOK, model.DefaultPatientMetrics(), predictor.Result{Idle: true}, "")
	}
}

// Predict handler runs the model when the form's predict button was pressed
func Predict(pipeline *predictor.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics := model.DefaultPatientMetrics()
		if err := c.Bind(&metrics); err != nil {
			log.Warnf("Cannot bind patient details: %v", err)
			return renderPredict(c, http.StatusBadRequest, model.DefaultPatientMetrics(), predictor.Result{Idle: true}, "Invalid patient details")
		}
		if err := c.Validate(&metrics); err != nil {
			return renderPredict(c, http.StatusBadRequest, metrics, predictor.Result{Idle: true}, validationMessage(err))
		}

		triggered := c.FormValue("predict") != ""
		result, err := pipeline.Run(metrics, triggered)
		if err != nil {
			log.Error("Cannot predict blood pressure: ", err)
			return renderPredict(c, http.StatusInternalServerError, metrics, predictor.Result{Idle: true}, "Cannot run the prediction model")
		}
		if !result.Idle {
			log.Debugf("Prediction for %s: score=%v label=%s", currentUser(c), result.Prediction.Score, result.Prediction.Label)
		}
		return renderPredict(c, http.StatusOK, metrics, result, "")
	}
}

// GetFields handler returns the input field table
func GetFields() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, model.FieldSpecs)
	}
}

// APIPredict handler takes patient details as json and returns the label
func APIPredict(pipeline *predictor.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics := model.DefaultPatientMetrics()
		if err := c.Bind(&metrics); err != nil {
			return c.JSON(http.StatusBadRequest, jsonHTTPResponse{false, "Bad post data"})
		}
		if err := c.Validate(&metrics); err != nil {
			return c.JSON(http.StatusBadRequest, jsonHTTPResponse{false, validationMessage(err)})
		}

		prediction, err := pipeline.Predict(metrics)
		if err != nil {
			log.Error("Cannot predict blood pressure: ", err)
			return c.JSON(http.StatusInternalServerError, jsonHTTPResponse{false, "Cannot run the prediction model"})
		}

		return c.JSON(http.StatusOK, predictionResponse{
			Success:     true,
			Score:       prediction.Score,
			Label:       prediction.Label,
			Description: prediction.Label.Description(),
		})
	}
}

// validationMessage turns the first validator error into text for the form
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	spec, ok := model.FieldSpecByName(fe.Field())
	if !ok {
		return fe.Field() + " is invalid"
	}
	if spec.Kind == model.FieldChoice {
		return fmt.Sprintf("%s has an invalid value", spec.Label)
	}
	return fmt.Sprintf("%s must be between %v and %v", spec.Label, spec.Min, spec.Max)
}
