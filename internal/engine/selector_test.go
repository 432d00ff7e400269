package engine

import (
	"testing"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *domain.MappingCatalog {
	return domain.NewMappingCatalog([]domain.EmotionInterventionMapping{
		{
			Emotion:         domain.EmotionAnxious,
			Range:           domain.IntensityRange{Lo: 0, Hi: 0.5},
			Primary:         []domain.InterventionType{domain.InterventionMindfulness},
			Secondary:       []domain.InterventionType{domain.InterventionCopingSkills},
			CrisisThreshold: 0.85,
		},
		{
			Emotion: domain.EmotionAnxious,
			Range:   domain.IntensityRange{Lo: 0.5, Hi: 1, ClosedHi: true},
			Primary: []domain.InterventionType{
				domain.InterventionGrounding, domain.InterventionCopingSkills,
			},
			Secondary: []domain.InterventionType{
				domain.InterventionMindfulness, domain.InterventionEmotionalRegulation,
			},
			Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy},
			CrisisThreshold: 0.85,
		},
	})
}

func TestSelectInterventions_PrimaryBeforeSecondary(t *testing.T) {
	state := domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.35}
	res := SelectInterventions(state, domain.SafetyStandard, testCatalog())

	require.Len(t, res.Decisions, 2)
	assert.Equal(t, domain.InterventionMindfulness, res.Decisions[0].Type)
	assert.Equal(t, domain.InterventionCopingSkills, res.Decisions[1].Type)
	assert.False(t, res.Fallback)
}

func TestSelectInterventions_CapAtThree(t *testing.T) {
	state := domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.6}
	res := SelectInterventions(state, domain.SafetyStandard, testCatalog())

	require.Len(t, res.Decisions, 3)
	assert.Equal(t, domain.InterventionGrounding, res.Decisions[0].Type)
	assert.Equal(t, domain.InterventionCopingSkills, res.Decisions[1].Type)
	assert.Equal(t, domain.InterventionMindfulness, res.Decisions[2].Type)

	capped := false
	for _, r := range res.Reasons {
		if r.Code == app.ReasonRankCap {
			capped = true
			assert.Equal(t, domain.InterventionEmotionalRegulation, r.Intervention)
		}
	}
	assert.True(t, capped, "overflow candidate must be recorded in the audit trail")
}

func TestSelectInterventions_CrisisThresholdCollapses(t *testing.T) {
	state := domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.9}
	res := SelectInterventions(state, domain.SafetyStandard, testCatalog())

	require.Len(t, res.Decisions, 2)
	assert.Equal(t, domain.InterventionCopingSkills, res.Decisions[0].Type)
	assert.Equal(t, domain.InterventionEmotionalRegulation, res.Decisions[1].Type)
	for _, r := range res.Reasons {
		assert.Equal(t, app.ReasonCrisisThreshold, r.Code)
	}
}

func TestSelectInterventions_ContraindicationFiltered(t *testing.T) {
	catalog := domain.NewMappingCatalog([]domain.EmotionInterventionMapping{{
		Emotion: domain.EmotionFearful,
		Range:   domain.IntensityRange{Lo: 0, Hi: 1, ClosedHi: true},
		Primary: []domain.InterventionType{
			domain.InterventionGrounding, domain.InterventionExposureTherapy,
		},
		Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy},
		CrisisThreshold: 0.95,
	}})

	state := domain.EmotionalState{Primary: domain.EmotionFearful, Intensity: 0.5}
	res := SelectInterventions(state, domain.SafetyStandard, catalog)

	require.Len(t, res.Decisions, 1)
	assert.Equal(t, domain.InterventionGrounding, res.Decisions[0].Type)

	found := false
	for _, r := range res.Reasons {
		if r.Code == app.ReasonContraindicated && r.Intervention == domain.InterventionExposureTherapy {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSelectInterventions_SafetyLevelRestricts(t *testing.T) {
	catalog := domain.NewMappingCatalog([]domain.EmotionInterventionMapping{{
		Emotion: domain.EmotionFearful,
		Range:   domain.IntensityRange{Lo: 0, Hi: 1, ClosedHi: true},
		Primary: []domain.InterventionType{
			domain.InterventionExposureTherapy, domain.InterventionGrounding,
		},
		Secondary:       []domain.InterventionType{domain.InterventionTraumaProcessing},
		CrisisThreshold: 0.95,
	}})

	state := domain.EmotionalState{Primary: domain.EmotionFearful, Intensity: 0.5}
	res := SelectInterventions(state, domain.SafetyEnhanced, catalog)

	require.Len(t, res.Decisions, 1)
	assert.Equal(t, domain.InterventionGrounding, res.Decisions[0].Type)

	restricted := 0
	for _, r := range res.Reasons {
		if r.Code == app.ReasonSafetyRestricted {
			restricted++
		}
	}
	assert.Equal(t, 2, restricted, "exposure and trauma processing are both restricted at ENHANCED")
}

func TestSelectInterventions_MaximumOnlyCrisisSafe(t *testing.T) {
	state := domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.6}
	res := SelectInterventions(state, domain.SafetyMaximum, testCatalog())

	for _, d := range res.Decisions {
		assert.True(t, d.Type.CrisisSafe(), "%s leaked through MAXIMUM", d.Type)
	}
}

func TestSelectInterventions_MappingGapFallsBack(t *testing.T) {
	// Empty catalog simulates a configuration defect that validation should
	// have caught. The selector degrades to the universal safe default.
	catalog := domain.NewMappingCatalog(nil)
	state := domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.5}

	res := SelectInterventions(state, domain.SafetyStandard, catalog)
	assert.True(t, res.Fallback)
	require.Len(t, res.Decisions, 1)
	assert.Equal(t, domain.InterventionCopingSkills, res.Decisions[0].Type)
	assert.Equal(t, domain.SafetyEnhanced, res.Level, "fallback raises, never lowers, safety")
}

func TestSelectInterventions_FallbackKeepsHigherLevel(t *testing.T) {
	catalog := domain.NewMappingCatalog(nil)
	state := domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.5}
	res := SelectInterventions(state, domain.SafetyMaximum, catalog)
	assert.Equal(t, domain.SafetyMaximum, res.Level)
}

// Idempotence: identical inputs produce identical, order-stable output.
func TestSelectInterventions_Idempotent(t *testing.T) {
	state := domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.6}
	catalog := testCatalog()

	a := SelectInterventions(state, domain.SafetyStandard, catalog)
	b := SelectInterventions(state, domain.SafetyStandard, catalog)
	assert.Equal(t, a, b)
}

func TestSelectInterventions_DuplicateCandidatesDeduped(t *testing.T) {
	catalog := domain.NewMappingCatalog([]domain.EmotionInterventionMapping{{
		Emotion:         domain.EmotionCalm,
		Range:           domain.IntensityRange{Lo: 0, Hi: 1, ClosedHi: true},
		Primary:         []domain.InterventionType{domain.InterventionMindfulness},
		Secondary:       []domain.InterventionType{domain.InterventionMindfulness, domain.InterventionCopingSkills},
		CrisisThreshold: 0.95,
	}})
	state := domain.EmotionalState{Primary: domain.EmotionCalm, Intensity: 0.2}
	res := SelectInterventions(state, domain.SafetyStandard, catalog)

	require.Len(t, res.Decisions, 2)
	assert.Equal(t, domain.InterventionMindfulness, res.Decisions[0].Type)
	assert.Equal(t, domain.InterventionCopingSkills, res.Decisions[1].Type)
}

func TestSelectInterventions_EffectivenessDecaysWithIntensity(t *testing.T) {
	low := SelectInterventions(domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.1},
		domain.SafetyStandard, testCatalog())
	high := SelectInterventions(domain.EmotionalState{Primary: domain.EmotionAnxious, Intensity: 0.45},
		domain.SafetyStandard, testCatalog())

	require.NotEmpty(t, low.Decisions)
	require.NotEmpty(t, high.Decisions)
	assert.Greater(t, low.Decisions[0].EffectivenessEst, high.Decisions[0].EffectivenessEst)
}
