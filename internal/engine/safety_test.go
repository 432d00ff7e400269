package engine

import (
	"testing"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetermineSafetyLevel_Emergency(t *testing.T) {
	res := DetermineSafetyLevel(SafetyInput{Tier: domain.TierEmergency, ProgressScore: 80})
	assert.Equal(t, domain.SafetyMaximum, res.Level)
	assert.Equal(t, app.SafetyRuleEmergency, res.Rule)
}

func TestDetermineSafetyLevel_PeakIntensity(t *testing.T) {
	res := DetermineSafetyLevel(SafetyInput{Tier: domain.TierNone, Intensity: 0.9, ProgressScore: 80})
	assert.Equal(t, domain.SafetyMaximum, res.Level)
}

func TestDetermineSafetyLevel_HighTier(t *testing.T) {
	res := DetermineSafetyLevel(SafetyInput{Tier: domain.TierHigh, ProgressScore: 80})
	assert.Equal(t, domain.SafetyEnhanced, res.Level)
	assert.Equal(t, app.SafetyRuleHighOrTrauma, res.Rule)
}

func TestDetermineSafetyLevel_TraumaWithIntensity(t *testing.T) {
	res := DetermineSafetyLevel(SafetyInput{
		Tier: domain.TierNone, TraumaFlag: true, Intensity: 0.75, ProgressScore: 80,
	})
	assert.Equal(t, domain.SafetyEnhanced, res.Level)

	// Trauma flag alone, below the intensity floor, does not escalate.
	res = DetermineSafetyLevel(SafetyInput{
		Tier: domain.TierNone, TraumaFlag: true, Intensity: 0.4, ProgressScore: 80,
	})
	assert.Equal(t, domain.SafetyStandard, res.Level)
}

func TestDetermineSafetyLevel_FailureRate(t *testing.T) {
	res := DetermineSafetyLevel(SafetyInput{Tier: domain.TierNone, FailureRate: 0.7, ProgressScore: 80})
	assert.Equal(t, domain.SafetyEnhanced, res.Level)
	assert.Equal(t, app.SafetyRuleHistory, res.Rule)
}

func TestDetermineSafetyLevel_LowProgress(t *testing.T) {
	res := DetermineSafetyLevel(SafetyInput{Tier: domain.TierNone, ProgressScore: 15})
	assert.Equal(t, domain.SafetyEnhanced, res.Level)
	assert.Equal(t, app.SafetyRuleHistory, res.Rule)
}

func TestDetermineSafetyLevel_Default(t *testing.T) {
	res := DetermineSafetyLevel(SafetyInput{Tier: domain.TierLow, ProgressScore: 60})
	assert.Equal(t, domain.SafetyStandard, res.Level)
	assert.Equal(t, app.SafetyRuleDefault, res.Rule)
}

func TestDetermineSafetyLevel_NeverMinimal(t *testing.T) {
	for _, tier := range domain.AllTiers {
		res := DetermineSafetyLevel(SafetyInput{Tier: tier, ProgressScore: 100})
		assert.True(t, res.Level.AtLeast(domain.SafetyStandard),
			"MINIMAL must never be derived (tier %s)", tier)
	}
}

// Monotonic safety: for a fixed history, raising the tier never lowers the
// resulting safety level. Exercised across a grid of histories.
func TestDetermineSafetyLevel_MonotonicInTier(t *testing.T) {
	histories := []SafetyInput{
		{ProgressScore: 80},
		{ProgressScore: 15},
		{FailureRate: 0.9, ProgressScore: 80},
		{TraumaFlag: true, Intensity: 0.8, ProgressScore: 80},
		{Intensity: 0.5, ProgressScore: 50},
		{Intensity: 0.95},
	}
	for _, h := range histories {
		prev := -1
		for _, tier := range domain.AllTiers {
			input := h
			input.Tier = tier
			level := DetermineSafetyLevel(input).Level
			assert.GreaterOrEqual(t, level.Ordinal(), prev,
				"history %+v tier %s lowered the safety level", h, tier)
			prev = level.Ordinal()
		}
	}
}
