package mappingcfg

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quietharbor/haven/internal/domain"
)

// CatalogSchema is the top-level JSON structure for a mapping catalog file.
type CatalogSchema struct {
	Version  string          `json:"version"`
	Mappings []MappingImport `json:"mappings"`
}

// MappingImport defines one emotion/intensity-range mapping in the file.
type MappingImport struct {
	Emotion         string   `json:"emotion"`
	IntensityLo     float64  `json:"intensity_lo"`
	IntensityHi     float64  `json:"intensity_hi"`
	Primary         []string `json:"primary"`
	Secondary       []string `json:"secondary,omitempty"`
	Contraindicated []string `json:"contraindicated,omitempty"`
	CrisisThreshold float64  `json:"crisis_threshold"`
}

// LoadFile reads, decodes, converts, and validates a catalog file. Any
// failure here is a configuration error: the process should refuse to start.
func LoadFile(path string) (*domain.MappingCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping catalog: %w", err)
	}

	var schema CatalogSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing mapping catalog: %w", err)
	}

	mappings, err := convert(&schema)
	if err != nil {
		return nil, err
	}

	catalog := domain.NewMappingCatalog(mappings)
	if err := Validate(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func convert(schema *CatalogSchema) ([]domain.EmotionInterventionMapping, error) {
	out := make([]domain.EmotionInterventionMapping, 0, len(schema.Mappings))
	for i, m := range schema.Mappings {
		if !domain.ValidEmotions[m.Emotion] {
			return nil, fmt.Errorf("mapping %d: unknown emotion %q", i, m.Emotion)
		}

		primary, err := convertTypes(m.Primary)
		if err != nil {
			return nil, fmt.Errorf("mapping %d primary: %w", i, err)
		}
		secondary, err := convertTypes(m.Secondary)
		if err != nil {
			return nil, fmt.Errorf("mapping %d secondary: %w", i, err)
		}
		contra, err := convertTypes(m.Contraindicated)
		if err != nil {
			return nil, fmt.Errorf("mapping %d contraindicated: %w", i, err)
		}

		out = append(out, domain.EmotionInterventionMapping{
			Emotion: domain.EmotionType(m.Emotion),
			Range: domain.IntensityRange{
				Lo:       m.IntensityLo,
				Hi:       m.IntensityHi,
				ClosedHi: m.IntensityHi >= 1.0,
			},
			Primary:         primary,
			Secondary:       secondary,
			Contraindicated: contra,
			CrisisThreshold: m.CrisisThreshold,
		})
	}
	return out, nil
}

func convertTypes(names []string) ([]domain.InterventionType, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]domain.InterventionType, 0, len(names))
	for _, n := range names {
		if !domain.ValidInterventionTypes[n] {
			return nil, fmt.Errorf("unknown intervention type %q", n)
		}
		out = append(out, domain.InterventionType(n))
	}
	return out, nil
}
