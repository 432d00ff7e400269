package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/content"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/quietharbor/haven/internal/engine"
	"github.com/quietharbor/haven/internal/repository"
)

// History windows for the aggregates the safety rules consume.
const (
	recentTurnWindow    = 10
	recentOutcomeWindow = 20
)

// AssessmentContext bundles all data loaded for one assessment cycle.
type AssessmentContext struct {
	Now        time.Time
	State      domain.EmotionalState
	Aggregates domain.SessionAggregates
}

// ContextLoader validates the request and loads session history aggregates.
type ContextLoader struct {
	turns    repository.TurnRepo
	outcomes repository.OutcomeRepo
	profiles repository.ProfileRepo
}

func (cl *ContextLoader) Load(ctx context.Context, req app.AssessRequest) (*AssessmentContext, error) {
	state, err := buildState(req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	state.RecordedAt = now

	profile, err := cl.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session profile: %w", err)
	}

	tally, err := cl.outcomes.RecentTally(ctx, recentOutcomeWindow)
	if err != nil {
		return nil, fmt.Errorf("tallying recent outcomes: %w", err)
	}

	recent, err := cl.turns.ListRecent(ctx, recentTurnWindow)
	if err != nil {
		return nil, fmt.Errorf("loading recent turns: %w", err)
	}

	tiers := make([]domain.CrisisTier, len(recent))
	for i, turn := range recent {
		tiers[i] = turn.Tier
	}

	return &AssessmentContext{
		Now:   now,
		State: state,
		Aggregates: domain.SessionAggregates{
			ProgressScore:        profile.ProgressScore,
			CopingSkillCount:     profile.CopingSkillCount,
			RecentFailureRate:    tally.FailureRate(),
			TraumaTriggerHistory: profile.TraumaTriggers,
			RecentTiers:          tiers,
		},
	}, nil
}

// buildState converts the wire-level request into a normalized emotional
// state. An empty emotion is allowed: it yields the zero state and the
// classifier's low-confidence baseline. Unknown names are rejected.
func buildState(req app.AssessRequest) (domain.EmotionalState, error) {
	var state domain.EmotionalState

	if req.Emotion != "" {
		if !domain.ValidEmotions[req.Emotion] {
			return state, &app.AssessError{
				Code:    app.ErrUnknownEmotion,
				Message: fmt.Sprintf("unknown emotion %q", req.Emotion),
			}
		}
		state.Primary = domain.EmotionType(req.Emotion)
	}

	for _, name := range req.Secondary {
		if !domain.ValidEmotions[name] {
			return state, &app.AssessError{
				Code:    app.ErrUnknownEmotion,
				Message: fmt.Sprintf("unknown secondary emotion %q", name),
			}
		}
		state.Secondary = append(state.Secondary, domain.EmotionType(name))
	}

	state.Intensity = req.Intensity
	state.Confidence = req.Confidence
	state.TriggerTags = req.TriggerTags
	return state.Normalized(), nil
}

// indicatorViews converts engine indicators into their external form.
func indicatorViews(indicators []domain.CrisisIndicator) []app.IndicatorView {
	views := make([]app.IndicatorView, len(indicators))
	for i, ind := range indicators {
		views[i] = app.IndicatorView{
			Tier:            ind.Tier,
			MatchedText:     ind.MatchedText,
			Kind:            ind.Kind,
			Confidence:      ind.Confidence,
			ImmediateAction: ind.ImmediateAction,
		}
	}
	return views
}

func interventionViews(decisions []domain.InterventionDecision) []app.InterventionView {
	views := make([]app.InterventionView, len(decisions))
	for i, d := range decisions {
		views[i] = app.InterventionView{
			Type:             d.Type,
			AdaptedContent:   d.AdaptedContent,
			SafetyLevel:      d.SafetyLevel,
			EffectivenessEst: d.EffectivenessEst,
		}
	}
	return views
}

// crisisView builds the crisis response served in place of interventions.
func crisisView(tier domain.CrisisTier, indicators []domain.CrisisIndicator) *app.CrisisResponseView {
	immediate := false
	for _, ind := range indicators {
		if ind.ImmediateAction {
			immediate = true
			break
		}
	}
	message, resources := content.CrisisMessage(tier, immediate)
	return &app.CrisisResponseView{
		Tier:            tier,
		Message:         message,
		Resources:       resources,
		ImmediateAction: immediate,
	}
}

func decisionTypes(decisions []domain.InterventionDecision) []domain.InterventionType {
	types := make([]domain.InterventionType, len(decisions))
	for i, d := range decisions {
		types[i] = d.Type
	}
	return types
}

// evaluateExposure runs the exposure gate when the request names a target.
func evaluateExposure(
	req app.AssessRequest,
	rctx *AssessmentContext,
	tier domain.CrisisTier,
	level domain.SafetyLevel,
) (*app.ExposureView, []app.DecisionReason) {
	if req.ExposureTarget == "" {
		return nil, nil
	}

	readiness := engine.AssessExposureReadiness(engine.ExposureInput{
		Tier:              tier,
		Level:             level,
		TargetDescription: req.ExposureTarget,
		Intensity:         rctx.State.Intensity,
		ProgressScore:     rctx.Aggregates.ProgressScore,
		CopingSkillCount:  rctx.Aggregates.CopingSkillCount,
	})

	view := &app.ExposureView{
		Score:                readiness.Score,
		Ready:                readiness.Ready(),
		RecommendedIntensity: readiness.RecommendedIntensity,
	}

	reason := app.DecisionReason{
		Code:         app.ReasonExposureWithheld,
		Intervention: domain.InterventionExposureTherapy,
		Message:      fmt.Sprintf("readiness %.2f below grant conditions", readiness.Score),
	}
	if readiness.Ready() {
		reason = app.DecisionReason{
			Code:         app.ReasonExposureGranted,
			Intervention: domain.InterventionExposureTherapy,
			Message:      fmt.Sprintf("readiness %.2f, recommended intensity %.2f", readiness.Score, readiness.RecommendedIntensity),
		}
	}
	return view, []app.DecisionReason{reason}
}
