package repository

import (
	"context"
	"errors"

	"github.com/quietharbor/haven/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// OutcomeTally aggregates outcome ratings for recent turns; the failure rate
// the safety rules consume derives from it.
type OutcomeTally struct {
	Total     int
	NotHelped int
}

// FailureRate returns the fraction of recent outcomes rated not-helped.
// Zero outcomes means no evidence, which reads as a zero failure rate.
func (t OutcomeTally) FailureRate() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.NotHelped) / float64(t.Total)
}

type TurnRepo interface {
	Create(ctx context.Context, turn *domain.CheckinTurn) error
	GetByID(ctx context.Context, id string) (*domain.CheckinTurn, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.CheckinTurn, error)
	CountByTier(ctx context.Context) (map[domain.CrisisTier]int, error)
	CountServed(ctx context.Context) (map[domain.InterventionType]int, error)
}

type OutcomeRepo interface {
	Create(ctx context.Context, o *domain.InterventionOutcome) error
	ListByTurn(ctx context.Context, turnID string) ([]*domain.InterventionOutcome, error)
	RecentTally(ctx context.Context, limit int) (OutcomeTally, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*SessionProfile, error)
	Upsert(ctx context.Context, p *SessionProfile) error
}

// SessionProfile is the persisted slice of session aggregates the engine
// consumes. Failure rate and recent tiers are derived from the turn and
// outcome tables, not stored here.
type SessionProfile struct {
	ID               string
	ProgressScore    float64
	CopingSkillCount int
	TraumaTriggers   []string
}
