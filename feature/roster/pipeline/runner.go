package pipeline

import (
	"context"

	"go.uber.org/zap"

	"roster-etl/core/database"
)

// Runner applies the pipeline to every configured target store, in
// configuration order, one at a time.
type Runner struct {
	orch *Orchestrator
	log  *zap.Logger
}

// NewRunner creates a multi-target runner around one orchestrator.
func NewRunner(orch *Orchestrator, log *zap.Logger) *Runner {
	return &Runner{orch: orch, log: log}
}

// RunAll runs each target sequentially. The first failing target aborts
// the remaining ones; the error travels up to the root command, which
// turns it into a non-zero process exit.
func (r *Runner) RunAll(ctx context.Context, targets []database.Target) error {
	r.log.Info("Configured target stores", zap.Int("count", len(targets)))

	for _, target := range targets {
		if _, err := r.orch.Run(ctx, target); err != nil {
			return err
		}
	}
	return nil
}
