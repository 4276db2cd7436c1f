package predictor

import (
	"time"

	"github.com/bp-predictor/bp-ui/model"
)

// Result is what the form shows. Idle means the user has not asked for a prediction yet.
type Result struct {
	Idle       bool
	Prediction model.Prediction
}

// Pipeline runs patient metrics through a regressor and labels the output
type Pipeline struct {
	regressor Regressor
	labeler   Labeler
}

// NewPipeline wires a loaded model to a labeler. A nil labeler means exact matching.
func NewPipeline(regressor Regressor, labeler Labeler) *Pipeline {
	if labeler == nil {
		labeler = Label
	}
	return &Pipeline{regressor: regressor, labeler: labeler}
}

// Predict makes exactly one inference call for metrics
func (p *Pipeline) Predict(metrics model.PatientMetrics) (model.Prediction, error) {
	score, err := p.regressor.Predict(metrics.Features())
	if err != nil {
		return model.Prediction{}, err
	}
	return model.Prediction{
		Score:     score,
		Label:     p.labeler(score),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Run predicts only when triggered, otherwise it reports the idle state
func (p *Pipeline) Run(metrics model.PatientMetrics, triggered bool) (Result, error) {
	if !triggered {
		return Result{Idle: true}, nil
	}
	prediction, err := p.Predict(metrics)
	if err != nil {
		return Result{}, err
	}
	return Result{Prediction: prediction}, nil
}
