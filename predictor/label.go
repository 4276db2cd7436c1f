package predictor

import (
	"fmt"
	"math"
	"strings"

	"github.com/bp-predictor/bp-ui/model"
)

// Labeler turns a raw regression score into a risk label
type Labeler func(score float64) model.RiskLabel

// Label compares the score for exact equality with the class codes.
// A continuous score that is neither exactly 0 nor exactly 1 is Hypertension.
func Label(score float64) model.RiskLabel {
	switch {
	case score == 0:
		return model.LabelNormal
	case score == 1:
		return model.LabelPrehypertension
	default:
		return model.LabelHypertension
	}
}

// LabelNearest rounds the score to the closest class code
func LabelNearest(score float64) model.RiskLabel {
	switch {
	case math.IsNaN(score):
		return model.LabelHypertension
	case score < 0.5:
		return model.LabelNormal
	case score < 1.5:
		return model.LabelPrehypertension
	default:
		return model.LabelHypertension
	}
}

// LabelerFor returns the labeler for a LABEL_MODE value
func LabelerFor(mode string) (Labeler, error) {
	switch strings.ToLower(mode) {
	case "", "exact":
		return Label, nil
	case "nearest":
		return LabelNearest, nil
	default:
		return nil, fmt.Errorf("unknown label mode %q", mode)
	}
}
