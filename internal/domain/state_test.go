package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmotionalState_Normalized_Clamps(t *testing.T) {
	s := EmotionalState{Primary: EmotionAnxious, Intensity: 1.7, Confidence: -0.2}
	n := s.Normalized()
	assert.Equal(t, 1.0, n.Intensity)
	assert.Equal(t, 0.0, n.Confidence)

	// Original is untouched.
	assert.Equal(t, 1.7, s.Intensity)
}

func TestEmotionalState_Normalized_InRangeUnchanged(t *testing.T) {
	s := EmotionalState{Primary: EmotionCalm, Intensity: 0.35, Confidence: 0.9}
	n := s.Normalized()
	assert.Equal(t, 0.35, n.Intensity)
	assert.Equal(t, 0.9, n.Confidence)
}

func TestEmotionalState_IsZero(t *testing.T) {
	assert.True(t, EmotionalState{}.IsZero())
	assert.False(t, EmotionalState{Primary: EmotionNumb}.IsZero())
	assert.False(t, EmotionalState{Intensity: 0.1}.IsZero())
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 1.0, Clamp01(2))
	assert.Equal(t, 0.5, Clamp01(0.5))
}

func TestIntensityRange_Contains(t *testing.T) {
	r := IntensityRange{Lo: 0.3, Hi: 0.7}
	assert.True(t, r.Contains(0.3))
	assert.True(t, r.Contains(0.69))
	assert.False(t, r.Contains(0.7))

	terminal := IntensityRange{Lo: 0.7, Hi: 1.0, ClosedHi: true}
	assert.True(t, terminal.Contains(1.0))
	assert.False(t, terminal.Contains(0.69))
}

func TestMappingCatalog_Lookup(t *testing.T) {
	catalog := NewMappingCatalog([]EmotionInterventionMapping{
		{Emotion: EmotionAnxious, Range: IntensityRange{Lo: 0, Hi: 0.5}},
		{Emotion: EmotionAnxious, Range: IntensityRange{Lo: 0.5, Hi: 1.0, ClosedHi: true}},
	})

	m, ok := catalog.Lookup(EmotionAnxious, 0.2)
	assert.True(t, ok)
	assert.Equal(t, 0.0, m.Range.Lo)

	m, ok = catalog.Lookup(EmotionAnxious, 0.5)
	assert.True(t, ok)
	assert.Equal(t, 0.5, m.Range.Lo)

	_, ok = catalog.Lookup(EmotionDepressed, 0.5)
	assert.False(t, ok, "uncovered emotion must report no mapping")
}
