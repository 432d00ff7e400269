package mappingcfg

import (
	"fmt"
	"sort"

	"github.com/quietharbor/haven/internal/domain"
)

// rangeEpsilon tolerates float representation noise when checking that
// adjacent range edges meet exactly.
const rangeEpsilon = 1e-9

// Validate enforces the catalog invariants at startup:
//   - every known emotion is covered,
//   - each emotion's intensity ranges partition [0,1] with no gaps or
//     overlaps, the terminal range closing at 1.0,
//   - crisis thresholds fall in [0,1].
//
// A failure here is a ConfigurationError: the caller must refuse to serve
// turns rather than hit a mapping gap at runtime.
func Validate(catalog *domain.MappingCatalog) error {
	for _, emotion := range domain.AllEmotions {
		mappings := catalog.ForEmotion(emotion)
		if len(mappings) == 0 {
			return fmt.Errorf("catalog invalid: emotion %s has no mappings", emotion)
		}
		if err := validatePartition(emotion, mappings); err != nil {
			return err
		}
		for _, m := range mappings {
			if m.CrisisThreshold < 0 || m.CrisisThreshold > 1 {
				return fmt.Errorf("catalog invalid: %s range %s crisis threshold %.2f outside [0,1]",
					emotion, m.Range, m.CrisisThreshold)
			}
		}
	}
	return nil
}

func validatePartition(emotion domain.EmotionType, mappings []domain.EmotionInterventionMapping) error {
	ranges := make([]domain.IntensityRange, len(mappings))
	for i, m := range mappings {
		ranges[i] = m.Range
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Lo < ranges[j].Lo })

	if diff := ranges[0].Lo; diff > rangeEpsilon || diff < -rangeEpsilon {
		return fmt.Errorf("catalog invalid: %s ranges start at %.2f, not 0", emotion, ranges[0].Lo)
	}

	for i := 1; i < len(ranges); i++ {
		gap := ranges[i].Lo - ranges[i-1].Hi
		if gap > rangeEpsilon {
			return fmt.Errorf("catalog invalid: %s has a gap between %s and %s",
				emotion, ranges[i-1], ranges[i])
		}
		if gap < -rangeEpsilon {
			return fmt.Errorf("catalog invalid: %s has overlapping ranges %s and %s",
				emotion, ranges[i-1], ranges[i])
		}
	}

	last := ranges[len(ranges)-1]
	if last.Hi < 1.0-rangeEpsilon || last.Hi > 1.0+rangeEpsilon {
		return fmt.Errorf("catalog invalid: %s ranges end at %.2f, not 1", emotion, last.Hi)
	}
	if !last.ClosedHi {
		return fmt.Errorf("catalog invalid: %s terminal range %s must include 1.0", emotion, last)
	}

	for i := range ranges {
		if ranges[i].Hi <= ranges[i].Lo {
			return fmt.Errorf("catalog invalid: %s range %s is empty or inverted", emotion, ranges[i])
		}
	}
	return nil
}
