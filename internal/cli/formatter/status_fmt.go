package formatter

import (
	"fmt"
	"strings"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/domain"
)

const progressBarWidth = 10

// FormatStatus formats a StatusResponse into a styled CLI dashboard string.
func FormatStatus(resp *app.StatusResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("progress"), RenderProgress(resp.ProgressScore/100, progressBarWidth),
		Dim("recent failure rate"), Score(resp.FailureRate)))
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Dim("advisory risk"), Score(resp.PredictedRisk), Dim("("+resp.PredictionBase+")")))

	b.WriteString("\n")
	crisisPart := StyleRed.Render(fmt.Sprintf("%d crisis", resp.CrisisCount))
	calmPart := StyleGreen.Render(fmt.Sprintf("%d steady", resp.TurnCount-resp.CrisisCount))
	b.WriteString(fmt.Sprintf("%d check-ins: %s, %s\n", resp.TurnCount, calmPart, crisisPart))

	if len(resp.RecentTurns) > 0 {
		b.WriteString("\n")
		headers := []string{"WHEN", "EMOTION", "INTENSITY", "TIER", "SAFETY"}
		rows := make([][]string, 0, len(resp.RecentTurns))
		for _, turn := range resp.RecentTurns {
			emotion := string(turn.Emotion)
			if emotion == "" {
				emotion = "-"
			}
			rows = append(rows, []string{
				Dim(RelativeTimeFrom(turn.At, resp.GeneratedAt)),
				Bold(emotion),
				Score(turn.Intensity),
				TierIndicator(turn.Tier),
				LevelIndicator(turn.SafetyLevel),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if served := formatServed(resp.ServedCounts); served != "" {
		b.WriteString("\n" + Dim("served: "+served) + "\n")
	}

	return RenderBox("Session", b.String())
}

// formatServed flattens served-intervention counts in a stable order.
func formatServed(counts map[domain.InterventionType]int) string {
	if len(counts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(counts))
	for _, it := range domain.AllInterventionTypes {
		if n, ok := counts[it]; ok {
			parts = append(parts, fmt.Sprintf("%s ×%d", it, n))
		}
	}
	return strings.Join(parts, ", ")
}
