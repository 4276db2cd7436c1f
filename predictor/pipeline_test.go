package predictor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bp-predictor/bp-ui/model"
)

// stubRegressor returns a fixed score and records its calls
type stubRegressor struct {
	score float64
	err   error
	calls [][]float64
}

func (s *stubRegressor) Predict(features []float64) (float64, error) {
	s.calls = append(s.calls, features)
	return s.score, s.err
}

func TestPipelineIdleUntilTriggered(t *testing.T) {
	reg := &stubRegressor{score: 1}
	p := NewPipeline(reg, nil)

	res, err := p.Run(model.DefaultPatientMetrics(), false)
	require.NoError(t, err)
	assert.True(t, res.Idle)
	assert.Empty(t, reg.calls)
}

func TestPipelineTriggered(t *testing.T) {
	reg := &stubRegressor{score: 1}
	p := NewPipeline(reg, nil)
	metrics := model.DefaultPatientMetrics()

	res, err := p.Run(metrics, true)
	require.NoError(t, err)
	assert.False(t, res.Idle)
	assert.Equal(t, model.LabelPrehypertension, res.Prediction.Label)
	assert.Equal(t, 1.0, res.Prediction.Score)
	assert.False(t, res.Prediction.CreatedAt.IsZero())

	require.Len(t, reg.calls, 1)
	assert.Equal(t, metrics.Features(), reg.calls[0])
}

func TestPipelineLabelers(t *testing.T) {
	reg := &stubRegressor{score: 0.3}

	pred, err := NewPipeline(reg, nil).Predict(model.DefaultPatientMetrics())
	require.NoError(t, err)
	assert.Equal(t, model.LabelHypertension, pred.Label)

	pred, err = NewPipeline(reg, LabelNearest).Predict(model.DefaultPatientMetrics())
	require.NoError(t, err)
	assert.Equal(t, model.LabelNormal, pred.Label)
}

func TestPipelineRegressorError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPipeline(&stubRegressor{err: boom}, nil)

	_, err := p.Run(model.DefaultPatientMetrics(), true)
	assert.ErrorIs(t, err, boom)
}

func TestPipelineWithLinearModel(t *testing.T) {
	coef := make([]float64, model.NumFeatures)
	p := NewPipeline(NewLinearModel(0, coef), nil)

	pred, err := p.Predict(model.DefaultPatientMetrics())
	require.NoError(t, err)
	assert.Equal(t, model.LabelNormal, pred.Label)
}
