package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aannayev/QaTask/internal/browser"
	internalcli "github.com/aannayev/QaTask/internal/cli"
	"github.com/aannayev/QaTask/internal/config"
	"github.com/aannayev/QaTask/internal/database"
	"github.com/aannayev/QaTask/internal/report"
	"github.com/aannayev/QaTask/internal/repository"
	"github.com/aannayev/QaTask/internal/scenario"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// buildVerifyDependencies creates all dependencies needed for a verification
// run: browser session, scenario runner, report, and the optional run-history
// store. The returned cleanup function closes the browser.
func buildVerifyDependencies(c *cli.Context) (internalcli.VerifyDependencies, func(), error) {
	var deps internalcli.VerifyDependencies

	cfg, err := config.Load(c.String("data"), os.Getenv)
	if err != nil {
		return deps, nil, fmt.Errorf("failed to load verification data: %w", err)
	}

	pw, b, err := browser.Launch(!c.Bool("headed"))
	if err != nil {
		return deps, nil, err
	}
	cleanup := func() {
		if err := b.Close(); err != nil {
			log.Printf("closing browser: %v", err)
		}
		if err := pw.Stop(); err != nil {
			log.Printf("stopping playwright: %v", err)
		}
	}

	page, err := b.NewPage()
	if err != nil {
		cleanup()
		return deps, nil, fmt.Errorf("failed to open page: %w", err)
	}

	session := browser.NewSession(page, cfg.BaseURL)
	deps.Runner = scenario.NewRunner(session, nil, cfg)
	deps.Report = report.New(uuid.New().String(), cfg.BaseURL, time.Now())

	// Run history is stored only when Postgres is configured.
	if config.HistoryEnabled(os.Getenv) {
		pgConfig, err := config.LoadPostgresConfig(os.Getenv)
		if err != nil {
			cleanup()
			return deps, nil, fmt.Errorf("incomplete Postgres configuration: %w", err)
		}
		db, err := database.Connect(pgConfig)
		if err != nil {
			cleanup()
			return deps, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			db.Close()
			cleanup()
			return deps, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		log.Println("Connected to run-history database")
		deps.Store = repository.NewRunRepository(db)
		closeBrowser := cleanup
		cleanup = func() {
			closeBrowser()
			db.Close()
		}
	}

	return deps, cleanup, nil
}

func finish(deps internalcli.VerifyDependencies, reportPath string, runErr error) error {
	if err := deps.Report.Write(reportPath); err != nil {
		log.Printf("writing report: %v", err)
	}
	if runErr != nil {
		return runErr
	}
	if !deps.Report.Passed {
		return fmt.Errorf("verification failed, see %s", reportPath)
	}
	log.Printf("verification passed, report written to %s", reportPath)
	return nil
}

// VerifyCommand returns the verify command
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Run the full purchase-flow verification against the storefront",
		Action: func(c *cli.Context) error {
			deps, cleanup, err := buildVerifyDependencies(c)
			if err != nil {
				return err
			}
			defer cleanup()

			return finish(deps, c.String("report"), internalcli.RunVerify(deps))
		},
	}
}

// CartCommand returns the cart command
func CartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "Run cart reconciliation scenarios only, no order is placed",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "quantity",
				Usage: "quantity to set on the first cart row",
				Value: 3,
			},
		},
		Action: func(c *cli.Context) error {
			deps, cleanup, err := buildVerifyDependencies(c)
			if err != nil {
				return err
			}
			defer cleanup()

			return finish(deps, c.String("report"), internalcli.RunCart(deps, c.Int("quantity")))
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "shopverify",
		Usage:   "Purchase-flow verification tool for the demo web shop",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data",
				Usage: "path to the verification data file",
				Value: "testdata/testdata.json",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "path the JSON run report is written to",
				Value: "report.json",
			},
			&cli.BoolFlag{
				Name:  "headed",
				Usage: "run the browser with a visible window",
			},
		},
		Commands: []*cli.Command{
			VerifyCommand(),
			CartCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
