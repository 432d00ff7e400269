package cli

import (
	"strings"

	"github.com/quietharbor/haven/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the use cases the CLI commands dispatch to.
type App struct {
	Assess   app.AssessUseCase
	Outcomes app.OutcomeUseCase
	Status   app.StatusUseCase

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive forms and the dashboard are only offered when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "haven" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "haven",
		Short: "Private check-in companion with crisis-aware suggestions",
	}

	root.AddCommand(
		newCheckinCmd(app),
		newAssessCmd(app),
		newOutcomeCmd(app),
		newStatusCmd(app),
	)

	// Accept underscores in flag names as aliases for hyphens, so
	// --exposure_target and --exposure-target both work.
	for _, cmd := range root.Commands() {
		cmd.Flags().SetNormalizeFunc(normalizeFlagName)
	}

	return root
}

func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
