package engine

import (
	"testing"

	"github.com/quietharbor/haven/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSignals_CollectsAcrossAllTiers(t *testing.T) {
	// One low-tier phrase and one severe phrase in the same text: both must
	// be collected. Matching never stops at the first tier found.
	sig := ExtractSignals("I am struggling and I want to die",
		domain.EmotionalState{Primary: domain.EmotionDepressed, Intensity: 0.6}, nil)

	tiers := make(map[domain.CrisisTier]bool)
	for _, ind := range sig.Indicators {
		tiers[ind.Tier] = true
	}
	assert.True(t, tiers[domain.TierLow], "low-tier match must be retained")
	assert.True(t, tiers[domain.TierSevere], "severe match must be retained")
}

func TestExtractSignals_KeywordIndicatorFields(t *testing.T) {
	sig := ExtractSignals("sometimes I think I should kill myself",
		domain.EmotionalState{Primary: domain.EmotionDepressed, Intensity: 0.5}, nil)

	require.NotEmpty(t, sig.Indicators)
	var severe *domain.CrisisIndicator
	for i := range sig.Indicators {
		if sig.Indicators[i].Tier == domain.TierSevere {
			severe = &sig.Indicators[i]
		}
	}
	require.NotNil(t, severe)
	assert.Equal(t, "kill myself", severe.MatchedText)
	assert.Equal(t, domain.MatchKeyword, severe.Kind)
	assert.True(t, severe.ImmediateAction)
	assert.Greater(t, severe.Confidence, 0.8)
}

func TestExtractSignals_CaseInsensitive(t *testing.T) {
	sig := ExtractSignals("I WANT TO DIE", domain.EmotionalState{}, nil)
	require.NotEmpty(t, sig.Indicators)
	assert.Equal(t, domain.TierSevere, sig.Indicators[0].Tier)
}

func TestExtractSignals_NoMatches(t *testing.T) {
	sig := ExtractSignals("had a pleasant walk in the park",
		domain.EmotionalState{Primary: domain.EmotionCalm, Intensity: 0.2}, nil)
	assert.Empty(t, sig.Indicators)
	assert.Equal(t, 0.2, sig.Intensity)
	assert.False(t, sig.TraumaFlag)
}

func TestExtractSignals_IntensityClamped(t *testing.T) {
	sig := ExtractSignals("", domain.EmotionalState{Intensity: 2.5}, nil)
	assert.Equal(t, 1.0, sig.Intensity)
}

func TestExtractSignals_TraumaFromText(t *testing.T) {
	sig := ExtractSignals("the flashback came back last night",
		domain.EmotionalState{Primary: domain.EmotionFearful, Intensity: 0.5}, nil)
	assert.True(t, sig.TraumaFlag)
}

func TestExtractSignals_TraumaFromStateTags(t *testing.T) {
	sig := ExtractSignals("feeling off today", domain.EmotionalState{
		Primary:     domain.EmotionAnxious,
		Intensity:   0.4,
		TriggerTags: []string{"childhood abuse"},
	}, nil)
	assert.True(t, sig.TraumaFlag)
}

func TestExtractSignals_TraumaFromNarrativeContext(t *testing.T) {
	sig := ExtractSignals("feeling off today",
		domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.4},
		[]string{"assault scene"})
	assert.True(t, sig.TraumaFlag)
}

func TestExtractSignals_PatternKind(t *testing.T) {
	sig := ExtractSignals("I keep thinking about dying lately", domain.EmotionalState{}, nil)
	require.NotEmpty(t, sig.Indicators)
	found := false
	for _, ind := range sig.Indicators {
		if ind.Kind == domain.MatchPattern && ind.Tier == domain.TierSevere {
			found = true
		}
	}
	assert.True(t, found, "multi-word phrase should match as pattern kind")
}

func TestExtractSignals_Pure(t *testing.T) {
	state := domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.5}
	a := ExtractSignals("hopeless and trapped", state, nil)
	b := ExtractSignals("hopeless and trapped", state, nil)
	assert.Equal(t, a, b)
}
