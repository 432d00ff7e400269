package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/cli/formatter"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckinCmd(cliApp *App) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Interactive check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cliApp.interactive() {
				return fmt.Errorf("checkin needs a terminal; use 'haven assess' with flags instead")
			}

			req, err := runCheckinForm()
			if err != nil {
				return err
			}

			resp, err := cliApp.Assess.Assess(context.Background(), *req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAssessment(resp, verbose))
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("turn "+resp.TurnID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the decision audit trail")

	return cmd
}

// runCheckinForm collects one check-in through a themed interactive form.
func runCheckinForm() (*app.AssessRequest, error) {
	var (
		emotion   string
		intensity string
		text      string
	)

	options := make([]huh.Option[string], 0, len(domain.AllEmotions))
	for _, e := range domain.AllEmotions {
		options = append(options, huh.NewOption(string(e), string(e)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(options...).
				Value(&emotion),
			huh.NewInput().
				Title("How strong is it? (0.0 to 1.0)").
				Placeholder("0.5").
				Value(&intensity).
				Validate(validateUnitInterval),
			huh.NewText().
				Title("Anything you want to say about it?").
				CharLimit(2000).
				Value(&text),
		),
	).WithTheme(havenHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	value, err := strconv.ParseFloat(intensity, 64)
	if err != nil {
		value = 0.5
	}

	return &app.AssessRequest{
		Text:      text,
		Emotion:   emotion,
		Intensity: value,
	}, nil
}

// validateUnitInterval accepts a decimal in [0,1]. Empty input is allowed and
// falls back to the placeholder default.
func validateUnitInterval(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number between 0 and 1")
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("enter a number between 0 and 1")
	}
	return nil
}
