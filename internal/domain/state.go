package domain

import "time"

// EmotionalState is the caller-supplied emotional reading for one turn.
// Intensity and Confidence are normalized to [0,1] before classification.
type EmotionalState struct {
	Primary     EmotionType
	Intensity   float64
	Secondary   []EmotionType
	Confidence  float64
	TriggerTags []string
	RecordedAt  time.Time
}

// Normalized returns a copy with intensity and confidence clamped to [0,1].
// Malformed states are repaired, never rejected: classification is total.
func (s EmotionalState) Normalized() EmotionalState {
	s.Intensity = Clamp01(s.Intensity)
	s.Confidence = Clamp01(s.Confidence)
	return s
}

// IsZero reports whether the state carries no usable signal.
func (s EmotionalState) IsZero() bool {
	return s.Primary == "" && s.Intensity == 0 && len(s.Secondary) == 0
}

// CrisisIndicator records one matched safety signal. Indicators are immutable
// values owned by the classification result that produced them.
type CrisisIndicator struct {
	Tier            CrisisTier
	MatchedText     string
	Kind            MatchKind
	Confidence      float64
	ImmediateAction bool
}

// Signals is the normalized output of signal extraction: every matched
// indicator across all tiers, plus the effective intensity and trauma flag.
type Signals struct {
	Indicators []CrisisIndicator
	Intensity  float64
	TraumaFlag bool
}

// Clamp01 clamps v to the closed interval [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
