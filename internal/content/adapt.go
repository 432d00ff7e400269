// Package content renders intervention decisions into user-facing guidance
// text. This is the boundary to narrative generation: the engine decides
// which interventions are permitted, this package only words them.
package content

import (
	"fmt"
	"strings"

	"github.com/quietharbor/haven/internal/domain"
)

// interventionIntro is the base guidance line per intervention type.
var interventionIntro = map[domain.InterventionType]string{
	domain.InterventionMindfulness:            "Take a slow breath and notice five things around you.",
	domain.InterventionCopingSkills:           "Pick one coping skill that has helped before and walk through it step by step.",
	domain.InterventionCognitiveRestructuring: "Write down the thought, then look for one piece of evidence against it.",
	domain.InterventionBehavioralActivation:   "Choose one small activity you can finish in ten minutes and start it.",
	domain.InterventionEmotionalRegulation:    "Name the feeling out loud and rate it from one to ten.",
	domain.InterventionExposureTherapy:        "Approach the situation gently and stay only as long as it feels workable.",
	domain.InterventionTraumaProcessing:       "Only revisit difficult memories with grounding close at hand.",
	domain.InterventionGrounding:              "Press your feet into the floor and describe where you are right now.",
	domain.InterventionSelfCompassion:         "Speak to yourself the way you would to a close friend in the same spot.",
}

// safetyFraming softens or tightens wording per safety level.
var safetyFraming = map[domain.SafetyLevel]string{
	domain.SafetyMinimal:  "",
	domain.SafetyStandard: "",
	domain.SafetyEnhanced: "Go gently, and stop if this feels like too much.",
	domain.SafetyMaximum:  "Keep it small and stay with what feels steady.",
}

// Adapt fills the AdaptedContent of each decision in place of the empty
// placeholder the selector leaves, returning a new slice. Decisions are
// immutable snapshots; the input is not modified.
func Adapt(decisions []domain.InterventionDecision, emotion domain.EmotionType) []domain.InterventionDecision {
	out := make([]domain.InterventionDecision, len(decisions))
	for i, d := range decisions {
		out[i] = d
		out[i].AdaptedContent = render(d, emotion)
	}
	return out
}

func render(d domain.InterventionDecision, emotion domain.EmotionType) string {
	var b strings.Builder
	intro, ok := interventionIntro[d.Type]
	if !ok {
		intro = "Take a moment before deciding what comes next."
	}
	b.WriteString(intro)

	if emotion != "" {
		b.WriteString(fmt.Sprintf(" Feeling %s is a signal, not a verdict.", emotion))
	}
	if framing := safetyFraming[d.SafetyLevel]; framing != "" {
		b.WriteString(" ")
		b.WriteString(framing)
	}
	return b.String()
}

// CrisisMessage is the fixed response body for the crisis short-circuit.
func CrisisMessage(tier domain.CrisisTier, immediate bool) (string, []string) {
	resources := []string{
		"988 Suicide & Crisis Lifeline (call or text 988)",
		"Crisis Text Line (text HOME to 741741)",
	}
	if immediate {
		return "What you're carrying right now is too heavy to hold alone. Please reach out to someone immediately — you deserve support right now.", resources
	}
	switch {
	case tier.AtLeast(domain.TierHigh):
		return "Thank you for telling me. This sounds really hard, and talking to a trained counselor could help right now.", resources
	default:
		return "It sounds like things are weighing on you. Support is available whenever you want it.", resources
	}
}
