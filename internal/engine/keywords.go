package engine

import "github.com/quietharbor/haven/internal/domain"

// Keyword and phrase tables per crisis tier. Extraction scans every tier's
// table on every turn; it never stops at the first tier that matches.

var tierKeywords = map[domain.CrisisTier][]string{
	domain.TierLow: {
		"struggling", "exhausted", "falling apart", "breaking down",
		"can't cope", "cant cope", "too much for me",
	},
	domain.TierModerate: {
		"hopeless", "worthless", "no way out", "give up on everything",
		"trapped", "unbearable", "hate myself", "empty inside",
	},
	domain.TierHigh: {
		"hurt myself", "hurting myself", "self-harm", "self harm",
		"cut myself", "cutting myself", "burn myself",
		"can't go on", "cant go on", "punish myself",
	},
	domain.TierSevere: {
		"kill myself", "suicide", "suicidal", "end my life",
		"want to die", "better off dead", "no reason to live",
		"wish i was dead", "not want to be alive",
	},
	domain.TierEmergency: {
		"going to kill myself", "about to end it", "have a plan to die",
		"tonight is the night", "goodbye forever", "this is goodbye",
		"pills in my hand", "wrote my note",
	},
}

// tierPhrases are multi-word contextual patterns that indicate imminence when
// present alongside other signals. They match as pattern-kind indicators.
var tierPhrases = map[domain.CrisisTier][]string{
	domain.TierHigh: {
		"thought about hurting", "keep thinking about hurting",
	},
	domain.TierSevere: {
		"thought about ending", "keep thinking about dying",
		"planning to hurt myself",
	},
	domain.TierEmergency: {
		"right now and i mean it", "doing it tonight",
	},
}

// keywordConfidence is the base confidence assigned per match kind and tier.
// Higher tiers use more specific wording, so matches there are trusted more.
var keywordConfidence = map[domain.CrisisTier]float64{
	domain.TierLow:       0.55,
	domain.TierModerate:  0.65,
	domain.TierHigh:      0.8,
	domain.TierSevere:    0.9,
	domain.TierEmergency: 0.95,
}

// traumaKeywords flag trauma-related content in free text, narrative triggers,
// and exposure target descriptions.
var traumaKeywords = []string{
	"trauma", "abuse", "abused", "assault", "assaulted",
	"flashback", "nightmare", "ptsd", "violated", "attacked",
}

// immediateActionFloor is the lowest tier whose indicators demand an
// immediate crisis action.
const immediateActionFloor = domain.TierSevere
