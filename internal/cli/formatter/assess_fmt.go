package formatter

import (
	"fmt"
	"strings"

	"github.com/quietharbor/haven/internal/app"
)

// FormatAssessment formats an AssessResponse into a styled CLI string. When
// verbose is set, the decision audit trail is appended.
func FormatAssessment(resp *app.AssessResponse, verbose bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", TierIndicator(resp.Tier), LevelIndicator(resp.SafetyLevel)))

	if resp.Crisis != nil {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(resp.Crisis.Message) + "\n\n")
		for _, r := range resp.Crisis.Resources {
			b.WriteString(Bold("  "+r) + "\n")
		}
		if resp.Crisis.ImmediateAction {
			b.WriteString("\n" + StyleRed.Render("Please reach out now. You do not have to wait.") + "\n")
		}
		return RenderBox("Support", b.String())
	}

	if len(resp.Interventions) == 0 {
		b.WriteString("\n" + Dim("Nothing to suggest this turn. Check in again when you're ready.") + "\n")
	}
	for i, iv := range resp.Interventions {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleHeader.Render(fmt.Sprintf("%d.", i+1)),
			Bold(string(iv.Type)),
			Dim(fmt.Sprintf("(est. %s)", Score(iv.EffectivenessEst)))))
		b.WriteString("   " + StyleFg.Render(iv.AdaptedContent) + "\n")
	}

	if resp.Exposure != nil {
		b.WriteString("\n" + Header("Exposure") + "\n")
		if resp.Exposure.Ready {
			b.WriteString(fmt.Sprintf("%s  readiness %s, suggested intensity %s\n",
				StyleGreen.Render("ready"),
				Score(resp.Exposure.Score),
				Score(resp.Exposure.RecommendedIntensity)))
		} else {
			b.WriteString(fmt.Sprintf("%s  readiness %s\n",
				Dim("not yet"), Score(resp.Exposure.Score)))
		}
	}

	if resp.Fallback {
		b.WriteString("\n" + StyleYellow.Render("Served the safe default: no mapping covered this turn.") + "\n")
	}

	if verbose && len(resp.Reasons) > 0 {
		b.WriteString("\n" + Header("Decisions") + "\n")
		for _, reason := range resp.Reasons {
			line := string(reason.Code)
			if reason.Intervention != "" {
				line += " " + string(reason.Intervention)
			}
			b.WriteString(Dim(fmt.Sprintf("  %s: %s", line, reason.Message)) + "\n")
		}
	}

	return RenderBox("Check-in", b.String())
}
