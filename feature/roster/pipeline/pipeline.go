package pipeline

import (
	"context"
	"time"

	"gorm.io/gorm"

	"roster-etl/core/database"
	"roster-etl/feature/roster/models"
)

// Fetcher supplies snapshots from the authoritative feed. It must be
// stateless with respect to any single store so one instance can serve
// every target sequentially.
type Fetcher interface {
	// FetchCurrentRosters returns the full current roster snapshot.
	FetchCurrentRosters(ctx context.Context) ([]models.RosterRecord, error)

	// FetchCurrentSeasonStats returns the current season's skater and
	// goalie statistics snapshots.
	FetchCurrentSeasonStats(ctx context.Context) (*models.SeasonStats, error)

	// FetchDetailedRecords loads per-player detail for the given ids
	// and writes it into the detail staging slots of db as a side
	// effect; nothing is returned to the orchestrator.
	FetchDetailedRecords(ctx context.Context, playerIDs []int64, db *gorm.DB) error
}

// Store is the slice of one target store the orchestrator drives. The
// orchestrator owns the handle for exactly one run and closes it on
// every exit path.
type Store interface {
	ActiveRosters(ctx context.Context) ([]models.RosterRecord, error)
	ReplaceStaging(ctx context.Context, slot string, records any) error
	InvokeProcedure(ctx context.Context, procedure string) error
	Gorm() *gorm.DB
	Close() error
}

// OpenStore connects to one target, yielding a Store owned by the run.
type OpenStore func(target database.Target) (Store, error)

// Archiver persists a successful run's snapshots outside the store.
// Optional; archive failures are logged, not propagated.
type Archiver interface {
	Archive(ctx context.Context, target string, ranAt time.Time, rosters []models.RosterRecord, stats *models.SeasonStats) error
}

// Summary aggregates the observable counts of one target's run. It is
// emitted through the log at the end of a successful run; no other
// component consumes it.
type Summary struct {
	Target        string
	RunID         string
	RosterRecords int
	Additions     int
	Removals      int
	SeasonSkaters int
	SeasonGoalies int
	Duration      time.Duration
}
