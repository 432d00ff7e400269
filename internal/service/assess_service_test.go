package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/quietharbor/haven/internal/mappingcfg"
	"github.com/quietharbor/haven/internal/metrics"
	"github.com/quietharbor/haven/internal/repository"
	"github.com/quietharbor/haven/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sql.DB
	assess   app.AssessUseCase
	outcomes app.OutcomeUseCase
	status   app.StatusUseCase
	turns    repository.TurnRepo
	profiles repository.ProfileRepo
	sink     *metrics.CounterSink
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	turns := repository.NewSQLiteTurnRepo(database)
	outcomes := repository.NewSQLiteOutcomeRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	sink := metrics.NewCounterSink()
	catalog := mappingcfg.DefaultCatalog()
	require.NoError(t, mappingcfg.Validate(catalog))

	return &testEnv{
		db:       database,
		assess:   NewAssessService(turns, outcomes, profiles, catalog, uow, sink),
		outcomes: NewOutcomeService(turns, uow),
		status:   NewStatusService(turns, outcomes, profiles, nil),
		turns:    turns,
		profiles: profiles,
		sink:     sink,
	}
}

func (e *testEnv) setProfile(t *testing.T, progress float64, copingSkills int) {
	t.Helper()
	ctx := context.Background()
	profile, err := e.profiles.Get(ctx)
	require.NoError(t, err)
	profile.ProgressScore = progress
	profile.CopingSkillCount = copingSkills
	require.NoError(t, e.profiles.Upsert(ctx, profile))
}

func TestAssess_CrisisShortCircuit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.assess.Assess(ctx, app.AssessRequest{
		Text:      "I can't do this anymore, I want to kill myself",
		Emotion:   "depressed",
		Intensity: 0.8,
	})
	require.NoError(t, err)

	assert.True(t, resp.Tier.AtLeast(domain.TierSevere))
	assert.True(t, resp.SafetyLevel.AtLeast(domain.SafetyEnhanced))
	require.NotNil(t, resp.Crisis)
	assert.True(t, resp.Crisis.ImmediateAction)
	assert.Contains(t, resp.Crisis.Resources[0], "988")
	assert.Empty(t, resp.Interventions)

	// The override reaches the persisted turn and the metrics sink.
	turn, err := env.turns.GetByID(ctx, resp.TurnID)
	require.NoError(t, err)
	assert.True(t, turn.CrisisOverride)
	assert.Empty(t, turn.Interventions)
	assert.Equal(t, uint64(1), env.sink.Snapshot().CrisisOverrides)
}

func TestAssess_CrisisDominatesNonTherapeutic(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.assess.Assess(context.Background(), app.AssessRequest{
		Text:           "no reason to live",
		Emotion:        "hopeless",
		Intensity:      0.6,
		NonTherapeutic: true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, domain.TierNone, resp.Tier)
	assert.NotEqual(t, domain.SafetyMinimal, resp.SafetyLevel)
	require.NotNil(t, resp.Crisis)
}

func TestAssess_MildAnxiety(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.assess.Assess(context.Background(), app.AssessRequest{
		Text:      "a bit nervous about tomorrow's meeting",
		Emotion:   "anxious",
		Intensity: 0.35,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TierNone, resp.Tier)
	assert.Equal(t, domain.SafetyStandard, resp.SafetyLevel)
	assert.Nil(t, resp.Crisis)
	require.Len(t, resp.Interventions, 2)
	assert.Equal(t, domain.InterventionMindfulness, resp.Interventions[0].Type)
	assert.Equal(t, domain.InterventionCopingSkills, resp.Interventions[1].Type)
	assert.NotEmpty(t, resp.Interventions[0].AdaptedContent)
}

func TestAssess_SevereDepressionLowProgress(t *testing.T) {
	env := newTestEnv(t)
	env.setProfile(t, 15, 0)

	resp, err := env.assess.Assess(context.Background(), app.AssessRequest{
		Text:      "everything feels heavy today",
		Emotion:   "depressed",
		Intensity: 0.85,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TierNone, resp.Tier)
	assert.Equal(t, domain.SafetyEnhanced, resp.SafetyLevel)
	assert.Equal(t, app.SafetyRuleHistory, resp.SafetyRule)
	require.Len(t, resp.Interventions, 1)
	assert.Equal(t, domain.InterventionCopingSkills, resp.Interventions[0].Type)
}

func TestAssess_ExposureTraumaTargetReducesScore(t *testing.T) {
	env := newTestEnv(t)
	env.setProfile(t, 55, 3)
	ctx := context.Background()

	plain, err := env.assess.Assess(ctx, app.AssessRequest{
		Text:           "feeling steady, thinking about next steps",
		Emotion:        "calm",
		Intensity:      0.3,
		ExposureTarget: "ordering coffee at the busy cafe",
	})
	require.NoError(t, err)
	require.NotNil(t, plain.Exposure)
	assert.True(t, plain.Exposure.Ready)

	tagged, err := env.assess.Assess(ctx, app.AssessRequest{
		Text:           "feeling steady, thinking about next steps",
		Emotion:        "calm",
		Intensity:      0.3,
		ExposureTarget: "going back to where the trauma happened",
	})
	require.NoError(t, err)
	require.NotNil(t, tagged.Exposure)
	assert.True(t, tagged.Exposure.Ready)
	assert.Less(t, tagged.Exposure.Score, plain.Exposure.Score)
}

func TestAssess_ExposureWithheldDuringCrisis(t *testing.T) {
	env := newTestEnv(t)
	env.setProfile(t, 55, 3)

	resp, err := env.assess.Assess(context.Background(), app.AssessRequest{
		Text:           "I keep thinking I would be better off dead",
		Emotion:        "depressed",
		Intensity:      0.3,
		ExposureTarget: "ordering coffee at the busy cafe",
	})
	require.NoError(t, err)

	assert.NotEqual(t, domain.TierNone, resp.Tier)
	require.NotNil(t, resp.Exposure)
	assert.False(t, resp.Exposure.Ready)
	assert.Zero(t, resp.Exposure.RecommendedIntensity)
}

func TestAssess_EmptyInput(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.assess.Assess(context.Background(), app.AssessRequest{})
	require.NoError(t, err)

	assert.Equal(t, domain.TierNone, resp.Tier)
	require.Len(t, resp.Indicators, 1)
	assert.LessOrEqual(t, resp.Indicators[0].Confidence, 0.3)
	assert.Nil(t, resp.Crisis)
	assert.Empty(t, resp.Interventions)
	assert.False(t, resp.Fallback)
}

func TestAssess_UnknownEmotion(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.assess.Assess(context.Background(), app.AssessRequest{
		Emotion: "exuberant",
	})
	require.Error(t, err)
	var assessErr *app.AssessError
	require.ErrorAs(t, err, &assessErr)
	assert.Equal(t, app.ErrUnknownEmotion, assessErr.Code)
}

func TestAssess_NonTherapeuticMinimal(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.assess.Assess(context.Background(), app.AssessRequest{
		Text:           "just browsing the journal prompts",
		Emotion:        "calm",
		Intensity:      0.1,
		NonTherapeutic: true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TierNone, resp.Tier)
	assert.Equal(t, domain.SafetyMinimal, resp.SafetyLevel)
	assert.Equal(t, app.SafetyRuleExplicitMinimal, resp.SafetyRule)
}

func TestAssess_DeterministicAcrossRepeats(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2026, 4, 5, 10, 0, 0, 0, time.UTC)
	req := app.AssessRequest{
		Text:      "pretty overwhelmed with everything on my plate",
		Emotion:   "overwhelmed",
		Intensity: 0.55,
		Now:       &now,
	}

	first, err := env.assess.Assess(context.Background(), req)
	require.NoError(t, err)
	second, err := env.assess.Assess(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Tier, second.Tier)
	assert.Equal(t, first.SafetyLevel, second.SafetyLevel)
	require.Equal(t, len(first.Interventions), len(second.Interventions))
	for i := range first.Interventions {
		assert.Equal(t, first.Interventions[i].Type, second.Interventions[i].Type)
	}
}

func TestAssess_FailureHistoryRaisesSafety(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seed, err := env.assess.Assess(ctx, app.AssessRequest{
		Text:      "tired but okay",
		Emotion:   "calm",
		Intensity: 0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SafetyStandard, seed.SafetyLevel)

	for i := 0; i < 4; i++ {
		require.NoError(t, env.outcomes.RecordOutcome(ctx, app.OutcomeRequest{
			TurnID: seed.TurnID,
			Type:   "mindfulness",
			Rating: "not_helped",
		}))
	}

	resp, err := env.assess.Assess(ctx, app.AssessRequest{
		Text:      "tired but okay",
		Emotion:   "calm",
		Intensity: 0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SafetyEnhanced, resp.SafetyLevel)
	assert.Equal(t, app.SafetyRuleHistory, resp.SafetyRule)
}
