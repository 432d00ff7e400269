// Package predictor defines the advisory risk-prediction capability. A real
// model can be substituted without touching the engine; predictions never
// override the classifier, they only annotate responses.
package predictor

import "github.com/quietharbor/haven/internal/domain"

// Prediction is an advisory forward-looking risk estimate.
type Prediction struct {
	// Risk is the predicted probability of an elevated tier on an upcoming
	// turn, in [0,1].
	Risk float64

	// Basis names the signal the prediction rests on, for display.
	Basis string
}

// RiskPredictor estimates near-term risk from recent session history.
// Implementations must be deterministic for a given input and must not
// perform I/O: aggregates arrive pre-fetched.
type RiskPredictor interface {
	PredictRisk(agg domain.SessionAggregates) Prediction
}

// StaticPredictor is the trivial default implementation: a weighted count of
// recent elevated tiers. It exists so the wiring and the response shape are
// real even before any model is.
type StaticPredictor struct{}

func (StaticPredictor) PredictRisk(agg domain.SessionAggregates) Prediction {
	if len(agg.RecentTiers) == 0 {
		return Prediction{Risk: 0.1, Basis: "no recent history"}
	}

	var weighted float64
	for _, tier := range agg.RecentTiers {
		weighted += float64(tier.Ordinal())
	}
	// Normalize against the worst case of every recent turn at EMERGENCY.
	worst := float64(len(agg.RecentTiers) * domain.TierEmergency.Ordinal())
	risk := domain.Clamp01(weighted / worst)

	return Prediction{Risk: risk, Basis: "recent tier history"}
}
