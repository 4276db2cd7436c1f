package model

import "strconv"

// NumFeatures is the length of the vector the regression model consumes.
const NumFeatures = 13

// TargetColumn is the dataset column the trainer fits against.
const TargetColumn = "Blood_Pressure_Abnormality"

// FeatureColumns lists the dataset columns in feature-vector order.
// It must stay aligned with PatientMetrics.Features.
var FeatureColumns = []string{
	"Level_of_Hemoglobin",
	"Genetic_Pedigree_Coefficient",
	"Age",
	"BMI",
	"Sex",
	"Pregnancy",
	"Smoking",
	"Physical_activity",
	"salt_content_in_the_diet",
	"alcohol_consumption_per_day",
	"Level_of_Stress",
	"Chronic_kidney_disease",
	"Adrenal_and_thyroid_disorders",
}

// PatientMetrics model
type PatientMetrics struct {
	Age             int     `json:"age" form:"age" validate:"min=1,max=120"`
	BMI             float64 `json:"bmi" form:"bmi" validate:"min=10,max=50"`
	Hemoglobin      float64 `json:"hemoglobin" form:"hemoglobin" validate:"min=5,max=20"`
	GeneticPedigree float64 `json:"genetic_pedigree" form:"genetic_pedigree" validate:"min=0.1,max=5"`
	Sex             int     `json:"sex" form:"sex" validate:"min=0,max=1"`
	Pregnancy       int     `json:"pregnancy" form:"pregnancy" validate:"min=0,max=1"`
	Smoking         int     `json:"smoking" form:"smoking" validate:"min=0,max=1"`
	PhysicalActive  int     `json:"physical_activity" form:"physical_activity" validate:"min=0,max=1"`
	SaltContent     int     `json:"salt_content" form:"salt_content" validate:"min=1,max=10"`
	Alcohol         int     `json:"alcohol" form:"alcohol" validate:"min=0,max=10"`
	Stress          int     `json:"stress" form:"stress" validate:"min=1,max=10"`
	KidneyDisease   int     `json:"kidney_disease" form:"kidney_disease" validate:"min=0,max=1"`
	ThyroidDisorder int     `json:"thyroid_disorder" form:"thyroid_disorder" validate:"min=0,max=1"`
}

// DefaultPatientMetrics returns the values the form is pre-filled with
func DefaultPatientMetrics() PatientMetrics {
	m := PatientMetrics{}
	for _, f := range FieldSpecs {
		m.set(f.Name, f.Default)
	}
	return m
}

// Features assembles the single-row feature vector in training order
func (m PatientMetrics) Features() []float64 {
	return []float64{
		m.Hemoglobin,
		m.GeneticPedigree,
		float64(m.Age),
		m.BMI,
		float64(m.Sex),
		float64(m.Pregnancy),
		float64(m.Smoking),
		float64(m.PhysicalActive),
		float64(m.SaltContent),
		float64(m.Alcohol),
		float64(m.Stress),
		float64(m.KidneyDisease),
		float64(m.ThyroidDisorder),
	}
}

// FormValues returns the current values keyed by form field name, formatted for html inputs
func (m PatientMetrics) FormValues() map[string]string {
	values := make(map[string]string, len(FieldSpecs))
	for _, f := range FieldSpecs {
		v := m.get(f.Name)
		if f.Kind == FieldFloat {
			values[f.Name] = strconv.FormatFloat(v, 'f', -1, 64)
		} else {
			values[f.Name] = strconv.Itoa(int(v))
		}
	}
	return values
}

func (m *PatientMetrics) set(name string, v float64) {
	switch name {
	case "age":
		m.Age = int(v)
	case "bmi":
		m.BMI = v
	case "hemoglobin":
		m.Hemoglobin = v
	case "genetic_pedigree":
		m.GeneticPedigree = v
	case "sex":
		m.Sex = int(v)
	case "pregnancy":
		m.Pregnancy = int(v)
	case "smoking":
		m.Smoking = int(v)
	case "physical_activity":
		m.PhysicalActive = int(v)
	case "salt_content":
		m.SaltContent = int(v)
	case "alcohol":
		m.Alcohol = int(v)
	case "stress":
		m.Stress = int(v)
	case "kidney_disease":
		m.KidneyDisease = int(v)
	case "thyroid_disorder":
		m.ThyroidDisorder = int(v)
	}
}

func (m PatientMetrics) get(name string) float64 {
	switch name {
	case "age":
		return float64(m.Age)
	case "bmi":
		return m.BMI
	case "hemoglobin":
		return m.Hemoglobin
	case "genetic_pedigree":
		return m.GeneticPedigree
	case "sex":
		return float64(m.Sex)
	case "pregnancy":
		return float64(m.Pregnancy)
	case "smoking":
		return float64(m.Smoking)
	case "physical_activity":
		return float64(m.PhysicalActive)
	case "salt_content":
		return float64(m.SaltContent)
	case "alcohol":
		return float64(m.Alcohol)
	case "stress":
		return float64(m.Stress)
	case "kidney_disease":
		return float64(m.KidneyDisease)
	case "thyroid_disorder":
		return float64(m.ThyroidDisorder)
	}
	return 0
}
