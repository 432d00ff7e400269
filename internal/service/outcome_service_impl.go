package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/db"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/quietharbor/haven/internal/repository"
)

type outcomeService struct {
	turns    repository.TurnRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewOutcomeService(turns repository.TurnRepo, uow db.UnitOfWork, observers ...UseCaseObserver) app.OutcomeUseCase {
	return &outcomeService{
		turns:    turns,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *outcomeService) RecordOutcome(ctx context.Context, req app.OutcomeRequest) error {
	started := time.Now()
	err := s.record(ctx, req)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "record_outcome",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"turn_id": req.TurnID,
			"rating":  req.Rating,
		},
	})
	return err
}

func (s *outcomeService) record(ctx context.Context, req app.OutcomeRequest) error {
	if !domain.ValidInterventionTypes[req.Type] {
		return &app.AssessError{
			Code:    app.ErrUnknownIntervention,
			Message: fmt.Sprintf("unknown intervention %q", req.Type),
		}
	}
	rating := domain.OutcomeRating(req.Rating)
	switch rating {
	case domain.OutcomeHelped, domain.OutcomeNeutral, domain.OutcomeNotHelped:
	default:
		return &app.AssessError{
			Code:    app.ErrUnknownRating,
			Message: fmt.Sprintf("unknown rating %q", req.Rating),
		}
	}

	turn, err := s.turns.GetByID(ctx, req.TurnID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &app.AssessError{
				Code:    app.ErrTurnNotFound,
				Message: fmt.Sprintf("turn %q not found", req.TurnID),
			}
		}
		return err
	}

	outcome := &domain.InterventionOutcome{
		ID:        uuid.New().String(),
		TurnID:    turn.ID,
		Type:      domain.InterventionType(req.Type),
		Rating:    rating,
		Note:      req.Note,
		CreatedAt: time.Now().UTC(),
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteOutcomeRepo(tx).Create(ctx, outcome); err != nil {
			return err
		}
		// A helped coping-skills outcome counts toward the practiced-skill
		// aggregate the exposure gate reads.
		if rating == domain.OutcomeHelped && outcome.Type == domain.InterventionCopingSkills {
			profiles := repository.NewSQLiteProfileRepo(tx)
			profile, err := profiles.Get(ctx)
			if err != nil {
				return err
			}
			profile.CopingSkillCount++
			return profiles.Upsert(ctx, profile)
		}
		return nil
	})
}
