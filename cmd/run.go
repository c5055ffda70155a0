package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roster-etl/core/config"
	"roster-etl/core/database"
	"roster-etl/core/logger"
	"roster-etl/core/storage"
	"roster-etl/feature/roster/archive"
	"roster-etl/feature/roster/pipeline"
	"roster-etl/feature/roster/store"
	"roster-etl/feed"
)

// runCmd executes one full sync pass against every configured target.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the roster sync pipeline against all configured targets",
	Long: `Fetches the current rosters and season statistics from the NHL feeds,
reconciles them against each target store's active roster, stages the
snapshots, and invokes the store's sync procedures.

Targets run sequentially in configuration order; the first failing
target aborts the remaining ones and the process exits non-zero.`,
	RunE: runPipeline,
}

func init() {
	RootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	// Resolve targets up front so a bad configuration fails before any
	// network or database work starts.
	targets, err := cfg.Database.Targets()
	if err != nil {
		return err
	}

	fetcher := feed.NewClient(cfg.Feed, l)

	open := func(target database.Target) (pipeline.Store, error) {
		return store.Open(cfg.Database, target)
	}

	orch := pipeline.NewOrchestrator(fetcher, open, l)

	if cfg.Archive.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		orch.SetArchiver(archive.New(client, cfg.Storage.Bucket, cfg.Archive))
		l.Info("Snapshot archive enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	return pipeline.NewRunner(orch, l).RunAll(ctx, targets)
}
