package cli

import (
	"context"
	"fmt"

	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOutcomeCmd(cliApp *App) *cobra.Command {
	var (
		turnID string
		itype  string
		rating string
		note   string
	)

	cmd := &cobra.Command{
		Use:   "outcome",
		Short: "Record how a served suggestion worked out",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cliApp.Outcomes.RecordOutcome(context.Background(), app.OutcomeRequest{
				TurnID: turnID,
				Type:   itype,
				Rating: rating,
				Note:   note,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("recorded %s for turn %s", rating, turnID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&turnID, "turn", "", "Turn ID the suggestion was served on")
	cmd.Flags().StringVar(&itype, "type", "", "Intervention type that was tried")
	cmd.Flags().StringVar(&rating, "rating", "", "Outcome rating: helped, neutral, or not_helped")
	cmd.Flags().StringVar(&note, "note", "", "Optional free-text note")
	_ = cmd.MarkFlagRequired("turn")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}
