package engine

import (
	"strings"

	"github.com/quietharbor/haven/internal/domain"
)

// ExtractSignals normalizes one turn of input into the signal set the
// classifier consumes. It is a pure function: no side effects, no clock.
//
// Matching collects indicators across every tier table. A severe phrase and a
// low-tier phrase in the same text both appear in the result; the classifier
// decides which dominates.
func ExtractSignals(text string, state domain.EmotionalState, contextTriggers []string) domain.Signals {
	state = state.Normalized()
	lower := strings.ToLower(text)

	var indicators []domain.CrisisIndicator

	for _, tier := range domain.AllTiers {
		for _, kw := range tierKeywords[tier] {
			if strings.Contains(lower, kw) {
				indicators = append(indicators, domain.CrisisIndicator{
					Tier:            tier,
					MatchedText:     kw,
					Kind:            domain.MatchKeyword,
					Confidence:      keywordConfidence[tier],
					ImmediateAction: tier.AtLeast(immediateActionFloor),
				})
			}
		}
		for _, phrase := range tierPhrases[tier] {
			if strings.Contains(lower, phrase) {
				indicators = append(indicators, domain.CrisisIndicator{
					Tier:            tier,
					MatchedText:     phrase,
					Kind:            domain.MatchPattern,
					Confidence:      keywordConfidence[tier],
					ImmediateAction: tier.AtLeast(immediateActionFloor),
				})
			}
		}
	}

	return domain.Signals{
		Indicators: indicators,
		Intensity:  state.Intensity,
		TraumaFlag: detectTrauma(lower, state.TriggerTags, contextTriggers),
	}
}

// detectTrauma reports whether the turn carries trauma-related content: in
// the free text, in the state's trigger tags, or in the narrative context's
// active trigger list.
func detectTrauma(lowerText string, stateTags, contextTriggers []string) bool {
	for _, kw := range traumaKeywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	for _, tag := range stateTags {
		if containsTraumaKeyword(tag) {
			return true
		}
	}
	for _, trig := range contextTriggers {
		if containsTraumaKeyword(trig) {
			return true
		}
	}
	return false
}

func containsTraumaKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range traumaKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
