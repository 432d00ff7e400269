package domain

import "time"

// InterventionDecision is one selected intervention with its adapted content.
// Decisions are immutable snapshots produced per classification call.
type InterventionDecision struct {
	Type             InterventionType
	AdaptedContent   string
	SafetyLevel      SafetyLevel
	EffectivenessEst float64
}

// SessionAggregates are read-only history aggregates supplied by the
// repository layer: the engine consumes them, never mutates them.
type SessionAggregates struct {
	ProgressScore        float64
	CopingSkillCount     int
	RecentFailureRate    float64
	TraumaTriggerHistory []string
	RecentTiers          []CrisisTier
}

// CheckinTurn is the persisted record of one assessed turn.
type CheckinTurn struct {
	ID              string
	Text            string
	Emotion         EmotionType
	Intensity       float64
	Tier            CrisisTier
	SafetyLevel     SafetyLevel
	CrisisOverride  bool
	Interventions   []InterventionType
	ExposureOffered bool
	CreatedAt       time.Time
}

// InterventionOutcome records user feedback on one served intervention.
type InterventionOutcome struct {
	ID        string
	TurnID    string
	Type      InterventionType
	Rating    OutcomeRating
	Note      string
	CreatedAt time.Time
}
