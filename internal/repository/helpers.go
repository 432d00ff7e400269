package repository

import (
	"strings"

	"github.com/quietharbor/haven/internal/domain"
)

// joinTypes flattens intervention types for single-column storage.
func joinTypes(types []domain.InterventionType) string {
	if len(types) == 0 {
		return ""
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// splitTypes parses a comma-joined intervention type column.
func splitTypes(s string) []domain.InterventionType {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.InterventionType, len(parts))
	for i, p := range parts {
		out[i] = domain.InterventionType(p)
	}
	return out
}

// joinTags flattens trauma trigger tags for single-column storage. Tags are
// stored newline-separated so tags themselves may contain commas.
func joinTags(tags []string) string {
	return strings.Join(tags, "\n")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
