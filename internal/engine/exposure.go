package engine

import "github.com/quietharbor/haven/internal/domain"

// ExposureInput carries the exposure gate's inputs. The gate only grants
// readiness when the concurrently computed tier is NONE and the safety level
// is STANDARD; every other combination is withheld unconditionally.
type ExposureInput struct {
	Tier              domain.CrisisTier
	Level             domain.SafetyLevel
	TargetDescription string
	Intensity         float64

	ProgressScore    float64
	CopingSkillCount int
}

// ExposureReadiness is the gate's outcome. A non-nil grant is the only proof
// of eligibility, and grants are mintable only inside this package: callers
// cannot fabricate one, and there is no boolean to flip.
type ExposureReadiness struct {
	Score                float64
	RecommendedIntensity float64

	grant *exposureGrant
}

type exposureGrant struct{}

// Ready reports whether gentle exposure content may be offered this turn.
func (r ExposureReadiness) Ready() bool {
	return r.grant != nil
}

// Readiness scoring weights and thresholds.
const (
	readyScoreFloor = 0.5

	lowIntensityBonus  = 0.3
	progressBonus      = 0.2
	copingBonus        = 0.2
	traumaTagPenalty   = 0.1
	lowIntensityCeil   = 0.4
	progressScoreGate  = 40.0
	copingCountGate    = 2
	maxExposureRange   = 0.5
	exposureBaseOffset = 0.1
)

// AssessExposureReadiness decides whether gentle exposure content may be
// offered in addition to the selected interventions. The gate is the only
// producer of exposure grants, so its preconditions are enforced
// structurally rather than by a runtime flag.
func AssessExposureReadiness(input ExposureInput) ExposureReadiness {
	intensity := domain.Clamp01(input.Intensity)

	var score float64
	if intensity < lowIntensityCeil {
		score += lowIntensityBonus
	}
	if input.ProgressScore > progressScoreGate {
		score += progressBonus
	}
	if input.CopingSkillCount >= copingCountGate {
		score += copingBonus
	}
	if containsTraumaKeyword(input.TargetDescription) {
		score -= traumaTagPenalty
	}
	score = domain.Clamp01(score)

	// Preconditions gate the grant, not the score: a withheld result still
	// reports its score so callers can see how close the turn was.
	if input.Tier != domain.TierNone || input.Level != domain.SafetyStandard {
		return ExposureReadiness{Score: score}
	}
	if score < readyScoreFloor {
		return ExposureReadiness{Score: score}
	}

	// Recommended intensity always starts conservatively low.
	recommended := exposureBaseOffset + 0.1*intensity
	if recommended > maxExposureRange {
		recommended = maxExposureRange
	}

	return ExposureReadiness{
		Score:                score,
		RecommendedIntensity: recommended,
		grant:                &exposureGrant{},
	}
}
