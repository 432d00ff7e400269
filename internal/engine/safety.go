package engine

import (
	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/domain"
)

// SafetyInput carries everything the safety rule table consumes.
type SafetyInput struct {
	Tier       domain.CrisisTier
	Intensity  float64
	TraumaFlag bool

	// Session history aggregates, pre-fetched by the caller.
	FailureRate   float64
	ProgressScore float64
}

// SafetyResult is the chosen safety level plus the rule that selected it.
type SafetyResult struct {
	Level domain.SafetyLevel
	Rule  app.SafetyRuleCode
}

// Thresholds for the safety rule table.
const (
	peakIntensity        = 0.9
	traumaIntensityFloor = 0.7
	failureRateCeiling   = 0.7
	progressScoreFloor   = 30.0
)

// DetermineSafetyLevel applies the ordered safety rule table; the first
// matching rule wins. The function is total and side-effect-free, and for a
// fixed history it is monotonically non-decreasing in the crisis tier.
//
// MINIMAL is never derived here. It is only ever selected by an explicit
// external request on a non-therapeutic content path.
func DetermineSafetyLevel(input SafetyInput) SafetyResult {
	intensity := domain.Clamp01(input.Intensity)

	switch {
	case input.Tier.AtLeast(domain.TierEmergency) || intensity >= peakIntensity:
		return SafetyResult{Level: domain.SafetyMaximum, Rule: app.SafetyRuleEmergency}
	case input.Tier.AtLeast(domain.TierHigh) || (input.TraumaFlag && intensity >= traumaIntensityFloor):
		return SafetyResult{Level: domain.SafetyEnhanced, Rule: app.SafetyRuleHighOrTrauma}
	case input.FailureRate >= failureRateCeiling || input.ProgressScore < progressScoreFloor:
		return SafetyResult{Level: domain.SafetyEnhanced, Rule: app.SafetyRuleHistory}
	default:
		return SafetyResult{Level: domain.SafetyStandard, Rule: app.SafetyRuleDefault}
	}
}
