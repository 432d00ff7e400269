package engine

import "github.com/quietharbor/haven/internal/domain"

// Intensity at or above this threshold, paired with a depressive primary
// emotion, injects a crisis indicator even with no textual match.
const intensityOverrideThreshold = 0.9

// Classify maps extracted signals to a crisis tier. The returned tier is the
// maximum ordinal among the indicators' tiers; all indicators are retained,
// including ties at the same tier.
//
// Classification is total. Empty input yields NONE with a single
// low-confidence baseline indicator, never an error.
func Classify(signals domain.Signals, state domain.EmotionalState) (domain.CrisisTier, []domain.CrisisIndicator) {
	state = state.Normalized()

	indicators := append([]domain.CrisisIndicator(nil), signals.Indicators...)

	// Intensity-derived override: extreme intensity on a depressive emotion
	// is a crisis signal on its own, keywords or not.
	if state.Intensity >= intensityOverrideThreshold && depressiveEmotion(state.Primary) {
		indicators = append(indicators, domain.CrisisIndicator{
			Tier:        domain.TierModerate,
			MatchedText: string(state.Primary),
			Kind:        domain.MatchIntensity,
			Confidence:  state.Confidence,
		})
	}

	if len(indicators) == 0 {
		return domain.TierNone, []domain.CrisisIndicator{{
			Tier:       domain.TierNone,
			Kind:       domain.MatchIntensity,
			Confidence: baselineConfidence(state),
		}}
	}

	tier := domain.TierNone
	for _, ind := range indicators {
		tier = domain.MaxTier(tier, ind.Tier)
	}
	return tier, indicators
}

func depressiveEmotion(e domain.EmotionType) bool {
	return e == domain.EmotionDepressed || e == domain.EmotionHopeless
}

// baselineConfidence rates the no-signal indicator. A usable emotional state
// justifies slightly more confidence than a fully empty turn, but the
// baseline always stays low.
func baselineConfidence(state domain.EmotionalState) float64 {
	if state.IsZero() {
		return 0.1
	}
	return 0.3
}
