package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/quietharbor/haven/internal/predictor"
	"github.com/quietharbor/haven/internal/repository"
)

const statusRecentTurns = 10

type statusService struct {
	turns     repository.TurnRepo
	outcomes  repository.OutcomeRepo
	profiles  repository.ProfileRepo
	predictor predictor.RiskPredictor
}

func NewStatusService(
	turns repository.TurnRepo,
	outcomes repository.OutcomeRepo,
	profiles repository.ProfileRepo,
	pred predictor.RiskPredictor,
) app.StatusUseCase {
	if pred == nil {
		pred = predictor.StaticPredictor{}
	}
	return &statusService{
		turns:     turns,
		outcomes:  outcomes,
		profiles:  profiles,
		predictor: pred,
	}
}

func (s *statusService) GetStatus(ctx context.Context) (*app.StatusResponse, error) {
	now := time.Now().UTC()

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session profile: %w", err)
	}

	tierCounts, err := s.turns.CountByTier(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting turns by tier: %w", err)
	}

	servedCounts, err := s.turns.CountServed(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting served interventions: %w", err)
	}

	tally, err := s.outcomes.RecentTally(ctx, recentOutcomeWindow)
	if err != nil {
		return nil, fmt.Errorf("tallying recent outcomes: %w", err)
	}

	recent, err := s.turns.ListRecent(ctx, statusRecentTurns)
	if err != nil {
		return nil, fmt.Errorf("loading recent turns: %w", err)
	}

	turnCount := 0
	crisisCount := 0
	for tier, n := range tierCounts {
		turnCount += n
		if tier != domain.TierNone {
			crisisCount += n
		}
	}

	tiers := make([]domain.CrisisTier, len(recent))
	summaries := make([]app.TurnSummary, len(recent))
	for i, turn := range recent {
		tiers[i] = turn.Tier
		summaries[i] = app.TurnSummary{
			TurnID:      turn.ID,
			At:          turn.CreatedAt,
			Emotion:     turn.Emotion,
			Intensity:   turn.Intensity,
			Tier:        turn.Tier,
			SafetyLevel: turn.SafetyLevel,
			Crisis:      turn.CrisisOverride,
		}
	}

	prediction := s.predictor.PredictRisk(domain.SessionAggregates{
		ProgressScore:     profile.ProgressScore,
		CopingSkillCount:  profile.CopingSkillCount,
		RecentFailureRate: tally.FailureRate(),
		RecentTiers:       tiers,
	})

	return &app.StatusResponse{
		GeneratedAt:    now,
		TurnCount:      turnCount,
		TierCounts:     tierCounts,
		ServedCounts:   servedCounts,
		CrisisCount:    crisisCount,
		ProgressScore:  profile.ProgressScore,
		FailureRate:    tally.FailureRate(),
		PredictedRisk:  prediction.Risk,
		PredictionBase: prediction.Basis,
		RecentTurns:    summaries,
	}, nil
}
