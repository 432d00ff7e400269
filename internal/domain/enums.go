package domain

type EmotionType string

const (
	EmotionAnxious     EmotionType = "anxious"
	EmotionDepressed   EmotionType = "depressed"
	EmotionAngry       EmotionType = "angry"
	EmotionFearful     EmotionType = "fearful"
	EmotionHopeless    EmotionType = "hopeless"
	EmotionOverwhelmed EmotionType = "overwhelmed"
	EmotionNumb        EmotionType = "numb"
	EmotionAshamed     EmotionType = "ashamed"
	EmotionLonely      EmotionType = "lonely"
	EmotionCalm        EmotionType = "calm"
)

// AllEmotions lists every recognized emotion. Mapping catalogs are validated
// against this set at startup.
var AllEmotions = []EmotionType{
	EmotionAnxious, EmotionDepressed, EmotionAngry, EmotionFearful,
	EmotionHopeless, EmotionOverwhelmed, EmotionNumb, EmotionAshamed,
	EmotionLonely, EmotionCalm,
}

// ValidEmotions is the canonical set of accepted emotion strings.
var ValidEmotions = map[string]bool{
	"anxious": true, "depressed": true, "angry": true, "fearful": true,
	"hopeless": true, "overwhelmed": true, "numb": true, "ashamed": true,
	"lonely": true, "calm": true,
}

type CrisisTier string

const (
	TierNone      CrisisTier = "none"
	TierLow       CrisisTier = "low"
	TierModerate  CrisisTier = "moderate"
	TierHigh      CrisisTier = "high"
	TierSevere    CrisisTier = "severe"
	TierEmergency CrisisTier = "emergency"
)

// tierOrdinals ranks crisis tiers by severity. Comparisons go through this
// table: the string values do not sort in severity order ("moderate" > "high"
// lexicographically, for instance), so string comparison is never correct.
var tierOrdinals = map[CrisisTier]int{
	TierNone:      0,
	TierLow:       1,
	TierModerate:  2,
	TierHigh:      3,
	TierSevere:    4,
	TierEmergency: 5,
}

// Ordinal returns the severity rank of the tier. Unknown tiers rank as NONE.
func (t CrisisTier) Ordinal() int {
	return tierOrdinals[t]
}

// AtLeast reports whether t is at or above the given tier by ordinal.
func (t CrisisTier) AtLeast(other CrisisTier) bool {
	return t.Ordinal() >= other.Ordinal()
}

// MaxTier returns the more severe of two tiers by ordinal.
func MaxTier(a, b CrisisTier) CrisisTier {
	if b.Ordinal() > a.Ordinal() {
		return b
	}
	return a
}

// AllTiers lists every tier in ascending severity order.
var AllTiers = []CrisisTier{
	TierNone, TierLow, TierModerate, TierHigh, TierSevere, TierEmergency,
}

type SafetyLevel string

const (
	SafetyMinimal  SafetyLevel = "minimal"
	SafetyStandard SafetyLevel = "standard"
	SafetyEnhanced SafetyLevel = "enhanced"
	SafetyMaximum  SafetyLevel = "maximum"
)

var safetyOrdinals = map[SafetyLevel]int{
	SafetyMinimal:  0,
	SafetyStandard: 1,
	SafetyEnhanced: 2,
	SafetyMaximum:  3,
}

// Ordinal returns the restriction rank of the safety level.
func (l SafetyLevel) Ordinal() int {
	return safetyOrdinals[l]
}

// AtLeast reports whether l is at or above the given level by ordinal.
func (l SafetyLevel) AtLeast(other SafetyLevel) bool {
	return l.Ordinal() >= other.Ordinal()
}

// MaxSafetyLevel returns the more restrictive of two levels by ordinal.
func MaxSafetyLevel(a, b SafetyLevel) SafetyLevel {
	if b.Ordinal() > a.Ordinal() {
		return b
	}
	return a
}

// AllSafetyLevels lists every safety level in ascending restriction order.
var AllSafetyLevels = []SafetyLevel{
	SafetyMinimal, SafetyStandard, SafetyEnhanced, SafetyMaximum,
}

type InterventionType string

const (
	InterventionMindfulness            InterventionType = "mindfulness"
	InterventionCopingSkills           InterventionType = "coping_skills"
	InterventionCognitiveRestructuring InterventionType = "cognitive_restructuring"
	InterventionBehavioralActivation   InterventionType = "behavioral_activation"
	InterventionEmotionalRegulation    InterventionType = "emotional_regulation"
	InterventionExposureTherapy        InterventionType = "exposure_therapy"
	InterventionTraumaProcessing       InterventionType = "trauma_processing"
	InterventionGrounding              InterventionType = "grounding"
	InterventionSelfCompassion         InterventionType = "self_compassion"
)

// AllInterventionTypes lists every intervention type in display order.
var AllInterventionTypes = []InterventionType{
	InterventionMindfulness, InterventionCopingSkills,
	InterventionCognitiveRestructuring, InterventionBehavioralActivation,
	InterventionEmotionalRegulation, InterventionExposureTherapy,
	InterventionTraumaProcessing, InterventionGrounding,
	InterventionSelfCompassion,
}

// ValidInterventionTypes is the canonical set of accepted intervention strings.
var ValidInterventionTypes = map[string]bool{
	"mindfulness": true, "coping_skills": true, "cognitive_restructuring": true,
	"behavioral_activation": true, "emotional_regulation": true,
	"exposure_therapy": true, "trauma_processing": true,
	"grounding": true, "self_compassion": true,
}

// CrisisSafe reports whether the intervention type remains permitted under
// every safety level. Coping skills and emotional regulation are the
// universal fallback set.
func (it InterventionType) CrisisSafe() bool {
	return it == InterventionCopingSkills || it == InterventionEmotionalRegulation
}

// safetyRestrictions maps each safety level to the intervention types it
// forbids. MAXIMUM forbids everything outside the crisis-safe set; that case
// is handled in Forbids directly rather than enumerated here.
var safetyRestrictions = map[SafetyLevel]map[InterventionType]bool{
	SafetyEnhanced: {
		InterventionExposureTherapy:  true,
		InterventionTraumaProcessing: true,
	},
}

// Forbids reports whether the safety level excludes the intervention type.
// MINIMAL and STANDARD forbid nothing; contraindications are a separate,
// per-mapping concern.
func (l SafetyLevel) Forbids(it InterventionType) bool {
	if l == SafetyMaximum {
		return !it.CrisisSafe()
	}
	return safetyRestrictions[l][it]
}

type MatchKind string

const (
	MatchKeyword   MatchKind = "keyword"
	MatchPattern   MatchKind = "pattern"
	MatchIntensity MatchKind = "intensity"
)

type OutcomeRating string

const (
	OutcomeHelped    OutcomeRating = "helped"
	OutcomeNeutral   OutcomeRating = "neutral"
	OutcomeNotHelped OutcomeRating = "not_helped"
)
