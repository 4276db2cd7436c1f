package model

import "time"

// RiskLabel is the categorical blood pressure result
type RiskLabel string

const (
	LabelNormal          RiskLabel = "Normal"
	LabelPrehypertension RiskLabel = "Prehypertension"
	LabelHypertension    RiskLabel = "Hypertension"
)

// Description returns the text shown to the user for the label
func (l RiskLabel) Description() string {
	switch l {
	case LabelNormal:
		return "Normal Blood Pressure"
	case LabelPrehypertension:
		return "Prehypertension (Elevated Blood Pressure)"
	default:
		return "Hypertension (High Blood Pressure)"
	}
}

// Prediction model
type Prediction struct {
	Score     float64   `json:"score"`
	Label     RiskLabel `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
