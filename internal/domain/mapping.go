package domain

import "fmt"

// IntensityRange is a half-open interval [Lo, Hi). The final range for an
// emotion closes at 1.0 inclusive so the ranges partition [0,1].
type IntensityRange struct {
	Lo float64
	Hi float64

	// ClosedHi marks the terminal range of a partition, which includes Hi.
	ClosedHi bool
}

// Contains reports whether v falls inside the range.
func (r IntensityRange) Contains(v float64) bool {
	if r.ClosedHi {
		return v >= r.Lo && v <= r.Hi
	}
	return v >= r.Lo && v < r.Hi
}

func (r IntensityRange) String() string {
	if r.ClosedHi {
		return fmt.Sprintf("[%.2f,%.2f]", r.Lo, r.Hi)
	}
	return fmt.Sprintf("[%.2f,%.2f)", r.Lo, r.Hi)
}

// EmotionInterventionMapping binds one emotion and intensity range to the
// interventions permitted there. For each emotion, the intensity ranges of
// all its mappings must partition [0,1] with no gaps or overlaps.
type EmotionInterventionMapping struct {
	Emotion         EmotionType
	Range           IntensityRange
	Primary         []InterventionType
	Secondary       []InterventionType
	Contraindicated []InterventionType
	CrisisThreshold float64
}

// IsContraindicated reports whether the intervention type is forbidden by
// this mapping regardless of ranking.
func (m EmotionInterventionMapping) IsContraindicated(it InterventionType) bool {
	for _, c := range m.Contraindicated {
		if c == it {
			return true
		}
	}
	return false
}

// MappingCatalog holds all mappings grouped by emotion.
type MappingCatalog struct {
	byEmotion map[EmotionType][]EmotionInterventionMapping
}

// NewMappingCatalog builds a catalog from a flat mapping list.
func NewMappingCatalog(mappings []EmotionInterventionMapping) *MappingCatalog {
	c := &MappingCatalog{byEmotion: make(map[EmotionType][]EmotionInterventionMapping)}
	for _, m := range mappings {
		c.byEmotion[m.Emotion] = append(c.byEmotion[m.Emotion], m)
	}
	return c
}

// ForEmotion returns all mappings registered for the emotion.
func (c *MappingCatalog) ForEmotion(e EmotionType) []EmotionInterventionMapping {
	return c.byEmotion[e]
}

// Emotions returns the emotions the catalog covers.
func (c *MappingCatalog) Emotions() []EmotionType {
	out := make([]EmotionType, 0, len(c.byEmotion))
	for _, e := range AllEmotions {
		if _, ok := c.byEmotion[e]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds the single mapping whose range contains the intensity.
// Returns false when no mapping matches, which the partition invariant makes
// a configuration error rather than an expected outcome.
func (c *MappingCatalog) Lookup(e EmotionType, intensity float64) (EmotionInterventionMapping, bool) {
	for _, m := range c.byEmotion[e] {
		if m.Range.Contains(intensity) {
			return m, true
		}
	}
	return EmotionInterventionMapping{}, false
}
