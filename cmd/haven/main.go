package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/quietharbor/haven/internal/cli"
	"github.com/quietharbor/haven/internal/db"
	"github.com/quietharbor/haven/internal/domain"
	"github.com/quietharbor/haven/internal/mappingcfg"
	"github.com/quietharbor/haven/internal/metrics"
	"github.com/quietharbor/haven/internal/repository"
	"github.com/quietharbor/haven/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.haven/haven.db
	dbPath := os.Getenv("HAVEN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".haven", "haven.db")
	}

	// The emotion-to-intervention catalog is the built-in default unless an
	// override file is provided. Either way it must pass partition
	// validation before any turn is assessed.
	var catalog *domain.MappingCatalog
	if mappingPath := os.Getenv("HAVEN_MAPPINGS"); mappingPath != "" {
		loaded, err := mappingcfg.LoadFile(mappingPath)
		if err != nil {
			return fmt.Errorf("loading mapping catalog %s: %w", mappingPath, err)
		}
		catalog = loaded
	} else {
		catalog = mappingcfg.DefaultCatalog()
		if err := mappingcfg.Validate(catalog); err != nil {
			return fmt.Errorf("validating built-in catalog: %w", err)
		}
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	turnRepo := repository.NewSQLiteTurnRepo(database)
	outcomeRepo := repository.NewSQLiteOutcomeRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	sink := metrics.NewCounterSink()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("HAVEN_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Assess:   service.NewAssessService(turnRepo, outcomeRepo, profileRepo, catalog, uow, sink, observer),
		Outcomes: service.NewOutcomeService(turnRepo, uow, observer),
		Status:   service.NewStatusService(turnRepo, outcomeRepo, profileRepo, nil),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
