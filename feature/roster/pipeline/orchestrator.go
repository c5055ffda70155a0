package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roster-etl/core/database"
	"roster-etl/core/logger"
	"roster-etl/feature/roster/reconcile"
	"roster-etl/feature/roster/staging"
	"roster-etl/feature/roster/syncer"
)

// Orchestrator runs the full reconcile-stage-sync sequence against one
// target store: the roster pipeline, the conditional player-detail
// pipeline, and the season-stats pipeline, strictly in that order.
type Orchestrator struct {
	fetcher  Fetcher
	open     OpenStore
	archiver Archiver
	log      *zap.Logger
}

// NewOrchestrator creates an orchestrator. The fetcher is shared across
// targets; the open function yields a fresh store handle per run.
func NewOrchestrator(fetcher Fetcher, open OpenStore, log *zap.Logger) *Orchestrator {
	return &Orchestrator{fetcher: fetcher, open: open, log: log}
}

// SetArchiver enables post-run snapshot archival.
func (o *Orchestrator) SetArchiver(a Archiver) {
	o.archiver = a
}

// Run executes the pipeline against one target. The store connection is
// released on every exit path. Any failure is logged with full target
// context here and returned unchanged; the orchestrator performs no
// recovery and no retries.
func (o *Orchestrator) Run(ctx context.Context, target database.Target) (*Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	log := logger.WithRun(o.log, target.Name, runID)

	log.Info("Starting roster sync run")

	st, err := o.open(target)
	if err != nil {
		log.Error("Target store unreachable", zap.Error(err))
		return nil, err
	}
	log.Info("Store connection established")
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn("Failed to close store connection", zap.Error(cerr))
			return
		}
		log.Info("Store connection closed")
	}()

	summary, err := o.runPipelines(ctx, log, st, target, started)
	if err != nil {
		log.Error("Run failed", zap.Error(err))
		return nil, err
	}

	summary.Target = target.Name
	summary.RunID = runID
	summary.Duration = time.Since(started)
	logSummary(log, summary)

	return summary, nil
}

func (o *Orchestrator) runPipelines(ctx context.Context, log *zap.Logger, st Store, target database.Target, started time.Time) (*Summary, error) {
	summary := &Summary{}

	// Roster pipeline.
	current, err := o.fetcher.FetchCurrentRosters(ctx)
	if err != nil {
		return nil, err
	}
	summary.RosterRecords = len(current)
	log.Info("Fetched current rosters", zap.Int("records", len(current)))

	active, err := st.ActiveRosters(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded active rosters", zap.Int("records", len(active)))

	delta := reconcile.Compute(current, active)
	summary.Additions = len(delta.Additions)
	summary.Removals = len(delta.Removals)
	if len(delta.Additions) > 0 {
		log.Info("Call-ups detected", zap.Int64s("player_ids", delta.AdditionIDs()))
	}
	if len(delta.Removals) > 0 {
		log.Info("Send-downs detected", zap.Int64s("player_ids", delta.RemovalIDs()))
	}

	if err := st.ReplaceStaging(ctx, staging.SlotCurrentRosters, current); err != nil {
		return nil, err
	}
	if err := st.InvokeProcedure(ctx, syncer.ProcSyncRosters); err != nil {
		return nil, err
	}
	log.Info("Roster sync completed")

	// Player detail pipeline, skipped entirely when there are no
	// call-ups: no detail fetch, no staging write, no procedure call.
	// Roster sync above has already committed by this point.
	if ids := delta.AdditionIDs(); len(ids) > 0 {
		if err := o.fetcher.FetchDetailedRecords(ctx, ids, st.Gorm()); err != nil {
			return nil, err
		}
		for _, proc := range []string{syncer.ProcSyncPlayers, syncer.ProcSyncSeasonSkaters, syncer.ProcSyncSeasonGoalies} {
			if err := st.InvokeProcedure(ctx, proc); err != nil {
				return nil, err
			}
		}
		log.Info("Player detail sync completed", zap.Int("players", len(ids)))
	} else {
		log.Info("No call-ups, skipping player detail pipeline")
	}

	// Season stats pipeline.
	stats, err := o.fetcher.FetchCurrentSeasonStats(ctx)
	if err != nil {
		return nil, err
	}
	summary.SeasonSkaters = len(stats.Skaters)
	summary.SeasonGoalies = len(stats.Goalies)
	log.Info("Fetched current season stats",
		zap.Int("skaters", len(stats.Skaters)),
		zap.Int("goalies", len(stats.Goalies)))

	if err := st.ReplaceStaging(ctx, staging.SlotSkaters, stats.Skaters); err != nil {
		return nil, err
	}
	if err := st.ReplaceStaging(ctx, staging.SlotGoalies, stats.Goalies); err != nil {
		return nil, err
	}
	if err := st.InvokeProcedure(ctx, syncer.ProcSyncSkaters); err != nil {
		return nil, err
	}
	if err := st.InvokeProcedure(ctx, syncer.ProcSyncGoalies); err != nil {
		return nil, err
	}
	log.Info("Season stats sync completed")

	if o.archiver != nil {
		if err := o.archiver.Archive(ctx, target.Name, started, current, stats); err != nil {
			log.Warn("Snapshot archive failed", zap.Error(err))
		}
	}

	return summary, nil
}

// logSummary emits the run's observable counts.
func logSummary(log *zap.Logger, s *Summary) {
	log.Info("Run summary",
		zap.Int("roster_records", s.RosterRecords),
		zap.Int("call_ups", s.Additions),
		zap.Int("send_downs", s.Removals),
		zap.Int("season_skaters", s.SeasonSkaters),
		zap.Int("season_goalies", s.SeasonGoalies),
		zap.Duration("duration", s.Duration),
		zap.String("status", "success"))
}
