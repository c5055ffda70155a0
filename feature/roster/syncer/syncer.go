package syncer

import (
	"context"

	"gorm.io/gorm"

	"roster-etl/errs"
)

// Stored procedures the pipeline invokes. Roster sync must complete
// before the player detail trio, because the detail fetch is conditioned
// on the post-sync notion of "new player". The detail trio runs only
// when the run produced call-ups. The two season-stats procedures are
// independent of each other but both run after their staging loads.
const (
	ProcSyncRosters       = "sync_rosters_from_staging"
	ProcSyncPlayers       = "sync_players_from_staging"
	ProcSyncSeasonSkaters = "sync_season_skaters_from_staging"
	ProcSyncSeasonGoalies = "sync_season_goalies_from_staging"
	ProcSyncSkaters       = "sync_skaters_from_staging"
	ProcSyncGoalies       = "sync_goalies_from_staging"
)

// Invoker executes server-side merge procedures against one target
// store connection.
type Invoker struct {
	db *gorm.DB
}

// NewInvoker creates a procedure invoker over the given connection.
func NewInvoker(db *gorm.DB) *Invoker {
	return &Invoker{db: db}
}

// Invoke runs CALL <procedure>() in its own implicit transaction. Each
// invocation commits before the caller proceeds to the next step; a
// failure is never retried and aborts the target's pipeline.
func (i *Invoker) Invoke(ctx context.Context, procedure string) error {
	if err := i.db.WithContext(ctx).Exec("CALL " + procedure + "()").Error; err != nil {
		return errs.New(errs.KindSyncProcedure, procedure, err)
	}
	return nil
}
