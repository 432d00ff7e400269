package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrisisTier_OrdinalOrdering(t *testing.T) {
	for i := 1; i < len(AllTiers); i++ {
		lower := AllTiers[i-1]
		higher := AllTiers[i]
		assert.Greater(t, higher.Ordinal(), lower.Ordinal(),
			"%s must outrank %s", higher, lower)
	}
}

// The tier names deliberately do not sort by severity as strings. This pins
// the case where lexicographic comparison gives the wrong answer.
func TestCrisisTier_StringSortDisagreesWithOrdinal(t *testing.T) {
	names := make([]string, len(AllTiers))
	for i, tier := range AllTiers {
		names[i] = string(tier)
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	assert.NotEqual(t, names, sorted, "string sort must not reproduce severity order")

	// "moderate" > "high" lexicographically but not by severity.
	assert.True(t, "moderate" > "high")
	assert.True(t, TierHigh.Ordinal() > TierModerate.Ordinal())
}

func TestMaxTier(t *testing.T) {
	assert.Equal(t, TierHigh, MaxTier(TierModerate, TierHigh))
	assert.Equal(t, TierHigh, MaxTier(TierHigh, TierModerate))
	assert.Equal(t, TierEmergency, MaxTier(TierEmergency, TierSevere))
	assert.Equal(t, TierNone, MaxTier(TierNone, TierNone))
}

func TestCrisisTier_AtLeast(t *testing.T) {
	assert.True(t, TierSevere.AtLeast(TierHigh))
	assert.True(t, TierSevere.AtLeast(TierSevere))
	assert.False(t, TierModerate.AtLeast(TierHigh))
}

func TestSafetyLevel_Ordering(t *testing.T) {
	for i := 1; i < len(AllSafetyLevels); i++ {
		assert.Greater(t, AllSafetyLevels[i].Ordinal(), AllSafetyLevels[i-1].Ordinal())
	}
	assert.Equal(t, SafetyMaximum, MaxSafetyLevel(SafetyEnhanced, SafetyMaximum))
}

func TestSafetyLevel_Forbids(t *testing.T) {
	assert.True(t, SafetyEnhanced.Forbids(InterventionExposureTherapy))
	assert.True(t, SafetyEnhanced.Forbids(InterventionTraumaProcessing))
	assert.False(t, SafetyEnhanced.Forbids(InterventionMindfulness))

	// MAXIMUM forbids everything outside the crisis-safe set.
	assert.True(t, SafetyMaximum.Forbids(InterventionMindfulness))
	assert.True(t, SafetyMaximum.Forbids(InterventionExposureTherapy))
	assert.False(t, SafetyMaximum.Forbids(InterventionCopingSkills))
	assert.False(t, SafetyMaximum.Forbids(InterventionEmotionalRegulation))

	assert.False(t, SafetyStandard.Forbids(InterventionExposureTherapy))
	assert.False(t, SafetyMinimal.Forbids(InterventionTraumaProcessing))
}

func TestInterventionType_CrisisSafe(t *testing.T) {
	assert.True(t, InterventionCopingSkills.CrisisSafe())
	assert.True(t, InterventionEmotionalRegulation.CrisisSafe())
	assert.False(t, InterventionExposureTherapy.CrisisSafe())
	assert.False(t, InterventionMindfulness.CrisisSafe())
}

func TestValidSets_CoverEnums(t *testing.T) {
	for _, e := range AllEmotions {
		require.True(t, ValidEmotions[string(e)], "emotion %s missing from ValidEmotions", e)
	}
	assert.Len(t, ValidEmotions, len(AllEmotions))
}
