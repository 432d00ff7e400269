package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/quietharbor/haven/internal/domain"
)

// Turn options
type TurnOption func(*domain.CheckinTurn)

func WithTier(t domain.CrisisTier) TurnOption {
	return func(ct *domain.CheckinTurn) {
		ct.Tier = t
	}
}

func WithSafetyLevel(l domain.SafetyLevel) TurnOption {
	return func(ct *domain.CheckinTurn) {
		ct.SafetyLevel = l
	}
}

func WithCrisisOverride() TurnOption {
	return func(ct *domain.CheckinTurn) {
		ct.CrisisOverride = true
	}
}

func WithInterventions(its ...domain.InterventionType) TurnOption {
	return func(ct *domain.CheckinTurn) {
		ct.Interventions = its
	}
}

func WithExposureOffered() TurnOption {
	return func(ct *domain.CheckinTurn) {
		ct.ExposureOffered = true
	}
}

func WithTurnCreatedAt(t time.Time) TurnOption {
	return func(ct *domain.CheckinTurn) {
		ct.CreatedAt = t
	}
}

func NewTestTurn(emotion domain.EmotionType, intensity float64, opts ...TurnOption) *domain.CheckinTurn {
	now := time.Now().UTC()
	ct := &domain.CheckinTurn{
		ID:          uuid.New().String(),
		Text:        "feeling " + string(emotion),
		Emotion:     emotion,
		Intensity:   intensity,
		Tier:        domain.TierNone,
		SafetyLevel: domain.SafetyStandard,
		Interventions: []domain.InterventionType{
			domain.InterventionMindfulness,
		},
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(ct)
	}
	return ct
}

// Outcome options
type OutcomeOption func(*domain.InterventionOutcome)

func WithOutcomeNote(n string) OutcomeOption {
	return func(o *domain.InterventionOutcome) {
		o.Note = n
	}
}

func WithOutcomeCreatedAt(t time.Time) OutcomeOption {
	return func(o *domain.InterventionOutcome) {
		o.CreatedAt = t
	}
}

func NewTestOutcome(turnID string, it domain.InterventionType, rating domain.OutcomeRating, opts ...OutcomeOption) *domain.InterventionOutcome {
	o := &domain.InterventionOutcome{
		ID:        uuid.New().String(),
		TurnID:    turnID,
		Type:      it,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
