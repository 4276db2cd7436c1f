package predictor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bp-predictor/bp-ui/model"
)

func testCoefficients() []float64 {
	coef := make([]float64, model.NumFeatures)
	for i := range coef {
		coef[i] = float64(i+1) / 10
	}
	return coef
}

func TestLinearModelPredict(t *testing.T) {
	m := NewLinearModel(0.5, []float64{2, -1, 0.25})

	got, err := m.Predict([]float64{1, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.5+2-3+1, got, 1e-12)

	_, err = m.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = m.Predict(nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestLinearModelInterceptOnly(t *testing.T) {
	m := NewLinearModel(1.25, nil)
	assert.Equal(t, 0, m.NumFeatures())

	got, err := m.Predict(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.25, got)
}

func TestLinearModelAccessorsCopy(t *testing.T) {
	coef := []float64{1, 2}
	m := NewLinearModel(3, coef)
	coef[0] = 100

	assert.Equal(t, 3.0, m.Intercept())
	got := m.Coefficients()
	assert.Equal(t, []float64{1, 2}, got)
	got[1] = 100
	assert.Equal(t, []float64{1, 2}, m.Coefficients())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bp_model.bin")
	m := NewLinearModel(-0.2, testCoefficients())
	require.NoError(t, Save(path, m))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.Intercept(), loaded.Intercept())
	assert.Equal(t, m.Coefficients(), loaded.Coefficients())

	features := model.DefaultPatientMetrics().Features()
	want, err := m.Predict(features)
	require.NoError(t, err)
	got, err := loaded.Predict(features)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWrongFeatureCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.bin")
	require.NoError(t, Save(path, NewLinearModel(0, []float64{1, 2, 3})))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrIncompatibleModel)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a model"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrIncompatibleModel)
}
