package cli

import (
	"context"
	"fmt"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAssessCmd(cliApp *App) *cobra.Command {
	var (
		text           string
		emotion        string
		intensity      float64
		secondary      []string
		confidence     float64
		triggers       []string
		contexts       []string
		exposureTarget string
		nonTherapeutic bool
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess one check-in from flags (non-interactive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := cliApp.Assess.Assess(context.Background(), app.AssessRequest{
				Text:            text,
				Emotion:         emotion,
				Intensity:       intensity,
				Secondary:       secondary,
				Confidence:      confidence,
				TriggerTags:     triggers,
				ContextTriggers: contexts,
				ExposureTarget:  exposureTarget,
				NonTherapeutic:  nonTherapeutic,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAssessment(resp, verbose))
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("turn "+resp.TurnID))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Free text for this check-in")
	cmd.Flags().StringVar(&emotion, "emotion", "", "Primary emotion (e.g. anxious, depressed, calm)")
	cmd.Flags().Float64Var(&intensity, "intensity", 0, "Emotion intensity in [0,1]")
	cmd.Flags().StringSliceVar(&secondary, "secondary", nil, "Secondary emotions")
	cmd.Flags().Float64Var(&confidence, "confidence", 0.8, "Confidence in the reported emotion, in [0,1]")
	cmd.Flags().StringSliceVar(&triggers, "trigger", nil, "Trigger tags for this state")
	cmd.Flags().StringSliceVar(&contexts, "context", nil, "Narrative context triggers")
	cmd.Flags().StringVar(&exposureTarget, "exposure-target", "", "Exposure target description to gate")
	cmd.Flags().BoolVar(&nonTherapeutic, "non-therapeutic", false, "Request the minimal safety level for non-therapeutic content")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the decision audit trail")

	return cmd
}
