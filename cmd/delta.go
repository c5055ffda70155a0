package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roster-etl/core/config"
	"roster-etl/core/logger"
	"roster-etl/feature/roster/reconcile"
	"roster-etl/feature/roster/store"
	"roster-etl/feed"
)

// deltaCmd reports the roster delta without touching any staging slot
// or procedure. Useful as a dry run before scheduling the pipeline.
var deltaCmd = &cobra.Command{
	Use:   "delta",
	Short: "Report call-ups and send-downs without syncing",
	Long: `Fetches the current rosters from the NHL feed and diffs them against
the primary target store's active roster.

Reports call-ups and send-downs by player id. No staging slot is
written and no sync procedure is invoked.`,
	RunE: runDelta,
}

func init() {
	RootCmd.AddCommand(deltaCmd)
}

func runDelta(cmd *cobra.Command, args []string) error {
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

	targets, err := cfg.Database.Targets()
	if err != nil {
		return err
	}
	primary := targets[0]

	fetcher := feed.NewClient(cfg.Feed, l)

	current, err := fetcher.FetchCurrentRosters(ctx)
	if err != nil {
		return err
	}
	l.Info("Fetched current rosters", zap.Int("records", len(current)))

	st, err := store.Open(cfg.Database, primary)
	if err != nil {
		return err
	}
	defer st.Close()

	active, err := st.ActiveRosters(ctx)
	if err != nil {
		return err
	}
	l.Info("Loaded active rosters", zap.Int("records", len(active)))

	delta := reconcile.Compute(current, active)
	if delta.Empty() {
		l.Info("Rosters are in sync, no membership changes")
		return nil
	}

	for _, rec := range delta.Additions {
		l.Info("Call-up",
			zap.Int64("player_id", rec.PlayerID),
			zap.String("team", rec.TeamAbbrev),
			zap.String("name", rec.FirstName+" "+rec.LastName),
		)
	}
	for _, rec := range delta.Removals {
		l.Info("Send-down",
			zap.Int64("player_id", rec.PlayerID),
			zap.String("team", rec.TeamAbbrev),
			zap.String("name", rec.FirstName+" "+rec.LastName),
		)
	}

	l.Info("Roster delta",
		zap.Int("call_ups", len(delta.Additions)),
		zap.Int("send_downs", len(delta.Removals)),
	)
	return nil
}
