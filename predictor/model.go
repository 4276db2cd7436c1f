package predictor

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/bp-predictor/bp-ui/model"
)

var (
	ErrShapeMismatch     = errors.New("feature vector shape mismatch")
	ErrIncompatibleModel = errors.New("incompatible model artifact")
)

// Regressor maps one feature vector to one scalar
type Regressor interface {
	Predict(features []float64) (float64, error)
}

// LinearModel is a fitted ordinary least squares model.
// weights holds the intercept at index 0 followed by one coefficient per feature.
type LinearModel struct {
	weights *mat.VecDense
}

// NewLinearModel builds a model from an intercept and its coefficients
func NewLinearModel(intercept float64, coef []float64) *LinearModel {
	w := make([]float64, len(coef)+1)
	w[0] = intercept
	copy(w[1:], coef)
	return &LinearModel{weights: mat.NewVecDense(len(w), w)}
}

func (m *LinearModel) NumFeatures() int {
	return m.weights.Len() - 1
}

func (m *LinearModel) Intercept() float64 {
	return m.weights.AtVec(0)
}

func (m *LinearModel) Coefficients() []float64 {
	coef := make([]float64, m.NumFeatures())
	for i := range coef {
		coef[i] = m.weights.AtVec(i + 1)
	}
	return coef
}

// Predict returns intercept + coef·features
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != m.NumFeatures() {
		return 0, fmt.Errorf("%w: got %d features, model expects %d", ErrShapeMismatch, len(features), m.NumFeatures())
	}
	if len(features) == 0 {
		return m.Intercept(), nil
	}
	coef := m.weights.SliceVec(1, m.weights.Len())
	return m.Intercept() + mat.Dot(coef, mat.NewVecDense(len(features), features)), nil
}

func (m *LinearModel) MarshalBinary() ([]byte, error) {
	return m.weights.MarshalBinary()
}

func (m *LinearModel) UnmarshalBinary(data []byte) error {
	var w mat.VecDense
	if err := w.UnmarshalBinary(data); err != nil {
		return err
	}
	m.weights = &w
	return nil
}

// Save writes the model artifact to path
func Save(path string, m *LinearModel) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("cannot encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write model to %s: %w", path, err)
	}
	return nil
}

// Load reads a model artifact and checks it takes a patient feature vector
func Load(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read model %s: %w", path, err)
	}

	m := &LinearModel{}
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIncompatibleModel, path, err)
	}
	if m.NumFeatures() != model.NumFeatures {
		return nil, fmt.Errorf("%w: %s has %d coefficients, want %d", ErrIncompatibleModel, path, m.NumFeatures(), model.NumFeatures)
	}
	return m, nil
}
