package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/content"
	"github.com/quietharbor/haven/internal/db"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/quietharbor/haven/internal/engine"
	"github.com/quietharbor/haven/internal/metrics"
	"github.com/quietharbor/haven/internal/repository"
)

type assessService struct {
	loader   *ContextLoader
	catalog  *domain.MappingCatalog
	uow      db.UnitOfWork
	sink     metrics.Sink
	observer UseCaseObserver
}

func NewAssessService(
	turns repository.TurnRepo,
	outcomes repository.OutcomeRepo,
	profiles repository.ProfileRepo,
	catalog *domain.MappingCatalog,
	uow db.UnitOfWork,
	sink metrics.Sink,
	observers ...UseCaseObserver,
) app.AssessUseCase {
	if sink == nil {
		sink = metrics.NoopSink{}
	}
	return &assessService{
		loader: &ContextLoader{
			turns:    turns,
			outcomes: outcomes,
			profiles: profiles,
		},
		catalog:  catalog,
		uow:      uow,
		sink:     sink,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *assessService) Assess(ctx context.Context, req app.AssessRequest) (*app.AssessResponse, error) {
	started := time.Now()
	resp, err := s.assess(ctx, req)

	event := UseCaseEvent{
		Name:      "assess",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if resp != nil {
		event.Fields = map[string]any{
			"tier":         string(resp.Tier),
			"safety_level": string(resp.SafetyLevel),
			"crisis":       resp.Crisis != nil,
		}
	}
	s.observer.ObserveUseCase(ctx, event)

	return resp, err
}

func (s *assessService) assess(ctx context.Context, req app.AssessRequest) (*app.AssessResponse, error) {
	rctx, err := s.loader.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	signals := engine.ExtractSignals(req.Text, rctx.State, req.ContextTriggers)
	tier, indicators := engine.Classify(signals, rctx.State)
	s.sink.TierObserved(tier)

	safety := engine.DetermineSafetyLevel(engine.SafetyInput{
		Tier:          tier,
		Intensity:     rctx.State.Intensity,
		TraumaFlag:    signals.TraumaFlag,
		FailureRate:   rctx.Aggregates.RecentFailureRate,
		ProgressScore: rctx.Aggregates.ProgressScore,
	})

	level := safety.Level
	rule := safety.Rule
	// MINIMAL is only reachable by explicit request on a non-therapeutic
	// path, and only when nothing in the turn raised the level.
	if req.NonTherapeutic && tier == domain.TierNone && level == domain.SafetyStandard {
		level = domain.SafetyMinimal
		rule = app.SafetyRuleExplicitMinimal
	}

	resp := &app.AssessResponse{
		TurnID:      uuid.New().String(),
		GeneratedAt: rctx.Now,
		Tier:        tier,
		Indicators:  indicatorViews(indicators),
		SafetyLevel: level,
		SafetyRule:  rule,
	}

	turn := &domain.CheckinTurn{
		ID:          resp.TurnID,
		Text:        req.Text,
		Emotion:     rctx.State.Primary,
		Intensity:   rctx.State.Intensity,
		Tier:        tier,
		SafetyLevel: level,
		CreatedAt:   rctx.Now,
	}

	if tier != domain.TierNone {
		// Crisis short-circuit. Intervention selection never runs; the
		// crisis response replaces it unconditionally.
		resp.Crisis = crisisView(tier, indicators)
		resp.Reasons = append(resp.Reasons, app.DecisionReason{
			Code:    app.ReasonCrisisOverride,
			Message: "crisis tier " + string(tier) + " overrides intervention selection",
		})
		turn.CrisisOverride = true
		s.sink.CrisisOverride()
	} else if rctx.State.Primary == "" {
		// No named emotion means nothing to map. The turn still records the
		// low-confidence baseline classification.
	} else {
		sel := engine.SelectInterventions(rctx.State, level, s.catalog)
		if sel.Fallback {
			s.sink.MappingFallback()
		}
		decisions := content.Adapt(sel.Decisions, rctx.State.Primary)
		for _, d := range decisions {
			s.sink.InterventionServed(d.Type)
		}

		resp.Interventions = interventionViews(decisions)
		resp.Reasons = append(resp.Reasons, sel.Reasons...)
		resp.Fallback = sel.Fallback
		resp.SafetyLevel = sel.Level
		turn.SafetyLevel = sel.Level
		turn.Interventions = decisionTypes(decisions)
	}

	// The gate runs even during a crisis so the response can show how far
	// from eligibility the turn was. It never grants outside NONE/STANDARD.
	exposure, reasons := evaluateExposure(req, rctx, tier, resp.SafetyLevel)
	resp.Exposure = exposure
	resp.Reasons = append(resp.Reasons, reasons...)
	turn.ExposureOffered = exposure != nil && exposure.Ready

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTurnRepo(tx).Create(ctx, turn)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
