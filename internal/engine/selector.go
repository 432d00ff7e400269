package engine

import (
	"fmt"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/domain"
)

// maxInterventions caps how many interventions one turn may serve.
const maxInterventions = 3

// SelectionResult is the ordered, filtered intervention list for one turn,
// with the audit trail of every inclusion and exclusion.
type SelectionResult struct {
	Decisions []domain.InterventionDecision
	Reasons   []app.DecisionReason

	// Fallback marks the conservative degraded path taken when no mapping
	// covered the intensity. That indicates a catalog defect: the partition
	// invariant makes this unreachable for a validated catalog.
	Fallback bool

	// Level is the safety level the decisions were filtered under. On the
	// fallback path it may be raised above the requested level.
	Level domain.SafetyLevel
}

// SelectInterventions maps emotion, intensity, and safety level to the
// permitted interventions. The output is deterministic and order-stable for
// identical inputs: primary interventions rank before secondary, mapping
// order is preserved within each group, and the list caps at three.
func SelectInterventions(
	state domain.EmotionalState,
	level domain.SafetyLevel,
	catalog *domain.MappingCatalog,
) SelectionResult {
	state = state.Normalized()

	mapping, ok := catalog.Lookup(state.Primary, state.Intensity)
	if !ok {
		// Configuration gap. Collapse to the universal safe default rather
		// than failing the turn: coping skills under at least ENHANCED.
		fallbackLevel := domain.MaxSafetyLevel(level, domain.SafetyEnhanced)
		return SelectionResult{
			Decisions: []domain.InterventionDecision{
				newDecision(domain.InterventionCopingSkills, fallbackLevel, state.Intensity),
			},
			Reasons: []app.DecisionReason{{
				Code:         app.ReasonMappingFallback,
				Intervention: domain.InterventionCopingSkills,
				Message:      fmt.Sprintf("no mapping covers %s at intensity %.2f", state.Primary, state.Intensity),
			}},
			Fallback: true,
			Level:    fallbackLevel,
		}
	}

	result := SelectionResult{Level: level}

	// At or past the mapping's crisis threshold, only the crisis-safe subset
	// is permitted, regardless of the mapping's primary list.
	if state.Intensity >= mapping.CrisisThreshold {
		for _, it := range []domain.InterventionType{
			domain.InterventionCopingSkills,
			domain.InterventionEmotionalRegulation,
		} {
			result.Decisions = append(result.Decisions, newDecision(it, level, state.Intensity))
			result.Reasons = append(result.Reasons, app.DecisionReason{
				Code:         app.ReasonCrisisThreshold,
				Intervention: it,
				Message:      fmt.Sprintf("intensity %.2f at or above crisis threshold %.2f", state.Intensity, mapping.CrisisThreshold),
			})
		}
		return result
	}

	type candidate struct {
		it      domain.InterventionType
		primary bool
	}
	candidates := make([]candidate, 0, len(mapping.Primary)+len(mapping.Secondary))
	for _, it := range mapping.Primary {
		candidates = append(candidates, candidate{it: it, primary: true})
	}
	for _, it := range mapping.Secondary {
		candidates = append(candidates, candidate{it: it})
	}

	seen := make(map[domain.InterventionType]bool, len(candidates))
	for _, c := range candidates {
		if seen[c.it] {
			continue
		}
		seen[c.it] = true

		if mapping.IsContraindicated(c.it) {
			result.Reasons = append(result.Reasons, app.DecisionReason{
				Code:         app.ReasonContraindicated,
				Intervention: c.it,
				Message:      fmt.Sprintf("%s is contraindicated for %s in range %s", c.it, mapping.Emotion, mapping.Range),
			})
			continue
		}
		if level.Forbids(c.it) {
			result.Reasons = append(result.Reasons, app.DecisionReason{
				Code:         app.ReasonSafetyRestricted,
				Intervention: c.it,
				Message:      fmt.Sprintf("%s is restricted at safety level %s", c.it, level),
			})
			continue
		}
		if len(result.Decisions) >= maxInterventions {
			result.Reasons = append(result.Reasons, app.DecisionReason{
				Code:         app.ReasonRankCap,
				Intervention: c.it,
				Message:      "intervention list capped",
			})
			continue
		}

		code := app.ReasonSecondaryMapping
		if c.primary {
			code = app.ReasonPrimaryMapping
		}
		result.Decisions = append(result.Decisions, newDecision(c.it, level, state.Intensity))
		result.Reasons = append(result.Reasons, app.DecisionReason{
			Code:         code,
			Intervention: c.it,
			Message:      fmt.Sprintf("mapped for %s in range %s", mapping.Emotion, mapping.Range),
		})
	}

	return result
}

// effectivenessBase rates how reliably each intervention type lands,
// independent of context. These seed the per-decision estimate; outcome
// feedback adjusts future turns through the safety rules, not this table.
var effectivenessBase = map[domain.InterventionType]float64{
	domain.InterventionMindfulness:            0.7,
	domain.InterventionCopingSkills:           0.75,
	domain.InterventionCognitiveRestructuring: 0.65,
	domain.InterventionBehavioralActivation:   0.6,
	domain.InterventionEmotionalRegulation:    0.7,
	domain.InterventionExposureTherapy:        0.55,
	domain.InterventionTraumaProcessing:       0.5,
	domain.InterventionGrounding:              0.7,
	domain.InterventionSelfCompassion:         0.65,
}

// newDecision builds an immutable decision snapshot. The effectiveness
// estimate decays with intensity: everything lands worse in a storm.
func newDecision(it domain.InterventionType, level domain.SafetyLevel, intensity float64) domain.InterventionDecision {
	est := effectivenessBase[it] * (1 - 0.3*domain.Clamp01(intensity))
	return domain.InterventionDecision{
		Type:             it,
		SafetyLevel:      level,
		EffectivenessEst: est,
	}
}
