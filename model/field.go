package model

// FieldKind tells the form how to render an input
type FieldKind string

const (
	FieldInteger FieldKind = "integer"
	FieldFloat   FieldKind = "float"
	FieldChoice  FieldKind = "choice"
)

// Choice is one option of an enumerated field
type Choice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FieldSpec describes one patient input. Min, Max and Step are unused for choice fields.
type FieldSpec struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Step    float64   `json:"step,omitempty"`
	Default float64   `json:"default"`
	Choices []Choice  `json:"choices,omitempty"`
}

var noYes = []Choice{{Value: 0, Label: "No"}, {Value: 1, Label: "Yes"}}

// FieldSpecs lists the inputs in display order.
// Bounds must match the validate tags on PatientMetrics.
var FieldSpecs = []FieldSpec{
	{Name: "age", Label: "Age", Kind: FieldInteger, Min: 1, Max: 120, Step: 1, Default: 30},
	{Name: "bmi", Label: "BMI", Kind: FieldFloat, Min: 10, Max: 50, Step: 0.1, Default: 22.5},
	{Name: "hemoglobin", Label: "Level of Hemoglobin", Kind: FieldFloat, Min: 5, Max: 20, Step: 0.1, Default: 13.5},
	{Name: "genetic_pedigree", Label: "Genetic Pedigree Coefficient", Kind: FieldFloat, Min: 0.1, Max: 5, Step: 0.01, Default: 1},
	{Name: "sex", Label: "Sex", Kind: FieldChoice, Choices: []Choice{{Value: 0, Label: "Female"}, {Value: 1, Label: "Male"}}},
	{Name: "pregnancy", Label: "Pregnancy", Kind: FieldChoice, Choices: noYes},
	{Name: "smoking", Label: "Smoking", Kind: FieldChoice, Choices: noYes},
	{Name: "physical_activity", Label: "Physical Activity", Kind: FieldChoice, Choices: noYes},
	{Name: "salt_content", Label: "Salt Content in Diet", Kind: FieldInteger, Min: 1, Max: 10, Step: 1, Default: 5},
	{Name: "alcohol", Label: "Alcohol Consumption per Day", Kind: FieldInteger, Min: 0, Max: 10, Step: 1, Default: 0},
	{Name: "stress", Label: "Level of Stress", Kind: FieldInteger, Min: 1, Max: 10, Step: 1, Default: 5},
	{Name: "kidney_disease", Label: "Chronic Kidney Disease", Kind: FieldChoice, Choices: noYes},
	{Name: "thyroid_disorder", Label: "Adrenal/Thyroid Disorders", Kind: FieldChoice, Choices: noYes},
}

// FieldSpecByName looks a spec up by its form field name
func FieldSpecByName(name string) (FieldSpec, bool) {
	for _, f := range FieldSpecs {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
