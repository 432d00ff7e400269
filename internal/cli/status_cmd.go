package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quietharbor/haven/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(cliApp *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the session history and aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := cliApp.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}

			if plain || !cliApp.interactive() {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}

			program := tea.NewProgram(newDashboardModel(resp), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print once instead of opening the dashboard")

	return cmd
}
