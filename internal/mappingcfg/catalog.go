// Package mappingcfg owns the emotion-to-intervention mapping catalog: the
// built-in defaults, the JSON file loader, and the startup validation that
// enforces the intensity partition invariant.
package mappingcfg

import "github.com/quietharbor/haven/internal/domain"

// DefaultCatalog returns the built-in mapping catalog. Every emotion is
// covered and every emotion's intensity ranges partition [0,1]; Validate
// re-checks this at startup so a bad edit fails fast.
func DefaultCatalog() *domain.MappingCatalog {
	return domain.NewMappingCatalog(defaultMappings())
}

func defaultMappings() []domain.EmotionInterventionMapping {
	r := func(lo, hi float64) domain.IntensityRange {
		return domain.IntensityRange{Lo: lo, Hi: hi}
	}
	terminal := func(lo float64) domain.IntensityRange {
		return domain.IntensityRange{Lo: lo, Hi: 1.0, ClosedHi: true}
	}

	return []domain.EmotionInterventionMapping{
		{
			Emotion:         domain.EmotionAnxious,
			Range:           r(0, 0.4),
			Primary:         []domain.InterventionType{domain.InterventionMindfulness},
			Secondary:       []domain.InterventionType{domain.InterventionCopingSkills},
			CrisisThreshold: 0.85,
		},
		{
			Emotion:         domain.EmotionAnxious,
			Range:           r(0.4, 0.7),
			Primary:         []domain.InterventionType{domain.InterventionGrounding, domain.InterventionCopingSkills},
			Secondary:       []domain.InterventionType{domain.InterventionMindfulness},
			Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy},
			CrisisThreshold: 0.85,
		},
		{
			Emotion:         domain.EmotionAnxious,
			Range:           terminal(0.7),
			Primary:         []domain.InterventionType{domain.InterventionCopingSkills, domain.InterventionEmotionalRegulation},
			Secondary:       []domain.InterventionType{domain.InterventionGrounding},
			Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy, domain.InterventionCognitiveRestructuring},
			CrisisThreshold: 0.85,
		},

		{
			Emotion:         domain.EmotionDepressed,
			Range:           r(0, 0.4),
			Primary:         []domain.InterventionType{domain.InterventionBehavioralActivation},
			Secondary:       []domain.InterventionType{domain.InterventionSelfCompassion, domain.InterventionMindfulness},
			CrisisThreshold: 0.9,
		},
		{
			Emotion:         domain.EmotionDepressed,
			Range:           r(0.4, 0.7),
			Primary:         []domain.InterventionType{domain.InterventionBehavioralActivation, domain.InterventionCognitiveRestructuring},
			Secondary:       []domain.InterventionType{domain.InterventionCopingSkills},
			Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy},
			CrisisThreshold: 0.9,
		},
		{
			Emotion:         domain.EmotionDepressed,
			Range:           terminal(0.7),
			Primary:         []domain.InterventionType{domain.InterventionCopingSkills, domain.InterventionBehavioralActivation},
			Contraindicated: []domain.InterventionType{domain.InterventionBehavioralActivation, domain.InterventionExposureTherapy},
			CrisisThreshold: 0.9,
		},

		{
			Emotion:         domain.EmotionAngry,
			Range:           r(0, 0.5),
			Primary:         []domain.InterventionType{domain.InterventionCognitiveRestructuring},
			Secondary:       []domain.InterventionType{domain.InterventionMindfulness, domain.InterventionCopingSkills},
			CrisisThreshold: 0.9,
		},
		{
			Emotion:         domain.EmotionAngry,
			Range:           terminal(0.5),
			Primary:         []domain.InterventionType{domain.InterventionEmotionalRegulation, domain.InterventionCopingSkills},
			Secondary:       []domain.InterventionType{domain.InterventionGrounding},
			Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy},
			CrisisThreshold: 0.85,
		},

		{
			Emotion:         domain.EmotionFearful,
			Range:           r(0, 0.5),
			Primary:         []domain.InterventionType{domain.InterventionGrounding},
			Secondary:       []domain.InterventionType{domain.InterventionMindfulness, domain.InterventionExposureTherapy},
			CrisisThreshold: 0.9,
		},
		{
			Emotion:         domain.EmotionFearful,
			Range:           terminal(0.5),
			Primary:         []domain.InterventionType{domain.InterventionGrounding, domain.InterventionCopingSkills},
			Secondary:       []domain.InterventionType{domain.InterventionEmotionalRegulation},
			Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy},
			CrisisThreshold: 0.85,
		},

		{
			Emotion:         domain.EmotionHopeless,
			Range:           r(0, 0.5),
			Primary:         []domain.InterventionType{domain.InterventionCognitiveRestructuring, domain.InterventionSelfCompassion},
			Secondary:       []domain.InterventionType{domain.InterventionBehavioralActivation},
			CrisisThreshold: 0.85,
		},
		{
			Emotion:         domain.EmotionHopeless,
			Range:           terminal(0.5),
			Primary:         []domain.InterventionType{domain.InterventionCopingSkills},
			Secondary:       []domain.InterventionType{domain.InterventionEmotionalRegulation},
			Contraindicated: []domain.InterventionType{domain.InterventionBehavioralActivation, domain.InterventionExposureTherapy},
			CrisisThreshold: 0.8,
		},

		{
			Emotion:         domain.EmotionOverwhelmed,
			Range:           r(0, 0.5),
			Primary:         []domain.InterventionType{domain.InterventionGrounding, domain.InterventionMindfulness},
			Secondary:       []domain.InterventionType{domain.InterventionCopingSkills},
			CrisisThreshold: 0.9,
		},
		{
			Emotion:         domain.EmotionOverwhelmed,
			Range:           terminal(0.5),
			Primary:         []domain.InterventionType{domain.InterventionCopingSkills, domain.InterventionGrounding},
			Secondary:       []domain.InterventionType{domain.InterventionEmotionalRegulation},
			Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy},
			CrisisThreshold: 0.85,
		},

		{
			Emotion:         domain.EmotionNumb,
			Range:           r(0, 0.6),
			Primary:         []domain.InterventionType{domain.InterventionBehavioralActivation, domain.InterventionMindfulness},
			Secondary:       []domain.InterventionType{domain.InterventionSelfCompassion},
			CrisisThreshold: 0.9,
		},
		{
			Emotion:         domain.EmotionNumb,
			Range:           terminal(0.6),
			Primary:         []domain.InterventionType{domain.InterventionGrounding, domain.InterventionEmotionalRegulation},
			Secondary:       []domain.InterventionType{domain.InterventionCopingSkills},
			Contraindicated: []domain.InterventionType{domain.InterventionTraumaProcessing},
			CrisisThreshold: 0.9,
		},

		{
			Emotion:         domain.EmotionAshamed,
			Range:           r(0, 0.6),
			Primary:         []domain.InterventionType{domain.InterventionSelfCompassion},
			Secondary:       []domain.InterventionType{domain.InterventionCognitiveRestructuring, domain.InterventionMindfulness},
			CrisisThreshold: 0.9,
		},
		{
			Emotion:         domain.EmotionAshamed,
			Range:           terminal(0.6),
			Primary:         []domain.InterventionType{domain.InterventionSelfCompassion, domain.InterventionCopingSkills},
			Secondary:       []domain.InterventionType{domain.InterventionEmotionalRegulation},
			Contraindicated: []domain.InterventionType{domain.InterventionExposureTherapy},
			CrisisThreshold: 0.85,
		},

		{
			Emotion:         domain.EmotionLonely,
			Range:           r(0, 0.6),
			Primary:         []domain.InterventionType{domain.InterventionBehavioralActivation},
			Secondary:       []domain.InterventionType{domain.InterventionSelfCompassion, domain.InterventionCopingSkills},
			CrisisThreshold: 0.9,
		},
		{
			Emotion:         domain.EmotionLonely,
			Range:           terminal(0.6),
			Primary:         []domain.InterventionType{domain.InterventionCopingSkills, domain.InterventionSelfCompassion},
			Secondary:       []domain.InterventionType{domain.InterventionEmotionalRegulation},
			CrisisThreshold: 0.85,
		},

		{
			Emotion:         domain.EmotionCalm,
			Range:           r(0, 0.7),
			Primary:         []domain.InterventionType{domain.InterventionMindfulness},
			Secondary:       []domain.InterventionType{domain.InterventionExposureTherapy, domain.InterventionCognitiveRestructuring},
			CrisisThreshold: 0.95,
		},
		{
			Emotion:         domain.EmotionCalm,
			Range:           terminal(0.7),
			Primary:         []domain.InterventionType{domain.InterventionMindfulness, domain.InterventionGrounding},
			Secondary:       []domain.InterventionType{domain.InterventionCopingSkills},
			CrisisThreshold: 0.9,
		},
	}
}
