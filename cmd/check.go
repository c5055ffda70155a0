package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roster-etl/core/config"
	"roster-etl/core/logger"
	"roster-etl/feature/roster/store"
)

// checkCmd verifies connectivity and schema on every configured target.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify target connectivity and staging schema",
	Long: `Connects to every configured target store and verifies that the
active roster table and all staging slots exist.

Runs no sync. Exits non-zero if any target is unreachable or is
missing tables.`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	var failed int
	for _, target := range targets {
		tl := l.With(zap.String("target", target.Name))

		st, err := store.Open(cfg.Database, target)
		if err != nil {
			tl.Error("Target unreachable", zap.Error(err))
			failed++
			continue
		}

		missing, err := st.VerifySchema()
		_ = st.Close()
		if err != nil {
			tl.Error("Schema inspection failed", zap.Error(err))
			failed++
			continue
		}
		if len(missing) > 0 {
			tl.Error("Missing tables", zap.Strings("tables", missing))
			failed++
			continue
		}
		tl.Info("Target OK")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed the check", failed, len(targets))
	}
	l.Info("All targets passed", zap.Int("targets", len(targets)))
	return nil
}
