package app

import (
	"time"

	"github.com/quietharbor/haven/internal/domain"
)

type DecisionReasonCode string

const (
	ReasonCrisisOverride    DecisionReasonCode = "CRISIS_OVERRIDE"
	ReasonCrisisThreshold   DecisionReasonCode = "CRISIS_THRESHOLD"
	ReasonContraindicated   DecisionReasonCode = "CONTRAINDICATED"
	ReasonSafetyRestricted  DecisionReasonCode = "SAFETY_RESTRICTED"
	ReasonPrimaryMapping    DecisionReasonCode = "PRIMARY_MAPPING"
	ReasonSecondaryMapping  DecisionReasonCode = "SECONDARY_MAPPING"
	ReasonMappingFallback   DecisionReasonCode = "MAPPING_FALLBACK"
	ReasonIntensityOverride DecisionReasonCode = "INTENSITY_OVERRIDE"
	ReasonExposureGranted   DecisionReasonCode = "EXPOSURE_GRANTED"
	ReasonExposureWithheld  DecisionReasonCode = "EXPOSURE_WITHHELD"
	ReasonRankCap           DecisionReasonCode = "RANK_CAP"
)

// DecisionReason is one audit-trail entry explaining why an intervention was
// included, excluded, or replaced. Every assessment response carries the full
// list so a reviewer can reconstruct the decision.
type DecisionReason struct {
	Code         DecisionReasonCode
	Intervention domain.InterventionType
	Message      string
}

// SafetyRuleCode identifies which safety rule fired, for auditability.
type SafetyRuleCode string

const (
	SafetyRuleEmergency       SafetyRuleCode = "EMERGENCY_OR_PEAK_INTENSITY"
	SafetyRuleHighOrTrauma    SafetyRuleCode = "HIGH_TIER_OR_TRAUMA"
	SafetyRuleHistory         SafetyRuleCode = "FAILURE_OR_LOW_PROGRESS"
	SafetyRuleDefault         SafetyRuleCode = "DEFAULT_STANDARD"
	SafetyRuleExplicitMinimal SafetyRuleCode = "EXPLICIT_MINIMAL"
)

// IndicatorView is the externally visible form of a matched crisis indicator.
type IndicatorView struct {
	Tier            domain.CrisisTier
	MatchedText     string
	Kind            domain.MatchKind
	Confidence      float64
	ImmediateAction bool
}

// InterventionView is the externally visible form of one selected intervention.
type InterventionView struct {
	Type             domain.InterventionType
	AdaptedContent   string
	SafetyLevel      domain.SafetyLevel
	EffectivenessEst float64
}

// CrisisResponseView is returned instead of interventions when the crisis
// short-circuit fires.
type CrisisResponseView struct {
	Tier            domain.CrisisTier
	Message         string
	Resources       []string
	ImmediateAction bool
}

// ExposureView reports the exposure gate's outcome for the turn.
type ExposureView struct {
	Score                float64
	Ready                bool
	RecommendedIntensity float64
}

// AssessRequest carries one check-in turn into the assessment use case.
type AssessRequest struct {
	Text            string
	Emotion         string
	Intensity       float64
	Secondary       []string
	Confidence      float64
	TriggerTags     []string
	ContextTriggers []string

	// ExposureTarget, when set, asks the exposure gate to evaluate this
	// target description after intervention selection.
	ExposureTarget string

	// NonTherapeutic requests the MINIMAL safety level for content that is
	// not therapeutic. Crisis classification still runs and still dominates.
	NonTherapeutic bool

	// Now overrides the clock for deterministic tests.
	Now *time.Time
}

// AssessResponse is the immutable result of one assessed turn.
type AssessResponse struct {
	TurnID      string
	GeneratedAt time.Time
	Tier        domain.CrisisTier
	Indicators  []IndicatorView
	SafetyLevel domain.SafetyLevel
	SafetyRule  SafetyRuleCode

	// Crisis is non-nil iff the crisis short-circuit fired; Interventions is
	// always empty in that case.
	Crisis        *CrisisResponseView
	Interventions []InterventionView
	Exposure      *ExposureView
	Reasons       []DecisionReason

	// Fallback marks a response degraded to the conservative default because
	// of an internal inconsistency (e.g. a mapping gap).
	Fallback bool
}

// OutcomeRequest records user feedback on a served intervention.
type OutcomeRequest struct {
	TurnID string
	Type   string
	Rating string
	Note   string
}

// StatusResponse summarizes the session history for display.
type StatusResponse struct {
	GeneratedAt   time.Time
	TurnCount     int
	TierCounts    map[domain.CrisisTier]int
	ServedCounts  map[domain.InterventionType]int
	CrisisCount   int
	ProgressScore float64
	FailureRate   float64

	// PredictedRisk is an advisory forward-looking risk estimate derived
	// from recent tiers. It never feeds back into safety decisions.
	PredictedRisk  float64
	PredictionBase string

	RecentTurns []TurnSummary
}

// TurnSummary is one row of recent history in the status view.
type TurnSummary struct {
	TurnID      string
	At          time.Time
	Emotion     domain.EmotionType
	Intensity   float64
	Tier        domain.CrisisTier
	SafetyLevel domain.SafetyLevel
	Crisis      bool
}
