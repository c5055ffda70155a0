package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"roster-etl/core/database"
	"roster-etl/errs"
	"roster-etl/feature/roster/models"
	"roster-etl/feature/roster/staging"
	"roster-etl/feature/roster/syncer"
)

// activeRosterTable is the production table holding the last synced
// membership state, read at the start of every run.
const activeRosterTable = "newapi.rosters_active"

// Store is one target's database handle for the duration of a single
// run. It composes the connection with the staging loader and procedure
// invoker. The run owns the handle exclusively and must Close it on
// every exit path; handles are never shared across targets or reused.
type Store struct {
	db      *gorm.DB
	loader  *staging.Loader
	invoker *syncer.Invoker
	target  database.Target
}

// Open connects to the target store. An unreachable store is a
// connection error, surfaced before any fetch or staging work happens.
func Open(cfg database.Config, target database.Target) (*Store, error) {
	db, err := database.Connect(cfg, target)
	if err != nil {
		return nil, errs.New(errs.KindConnection, target.Name, err)
	}
	return &Store{
		db:      db,
		loader:  staging.NewLoader(db),
		invoker: syncer.NewInvoker(db),
		target:  target,
	}, nil
}

// ActiveRosters loads the previously synced roster membership.
func (s *Store) ActiveRosters(ctx context.Context) ([]models.RosterRecord, error) {
	var rows []models.RosterRecord
	if err := s.db.WithContext(ctx).Table(activeRosterTable).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load active rosters: %w", err)
	}
	return rows, nil
}

// ReplaceStaging writes a snapshot into the named staging slot,
// replacing its prior contents.
func (s *Store) ReplaceStaging(ctx context.Context, slot string, records any) error {
	return s.loader.Replace(ctx, slot, records)
}

// InvokeProcedure runs a server-side merge procedure.
func (s *Store) InvokeProcedure(ctx context.Context, procedure string) error {
	return s.invoker.Invoke(ctx, procedure)
}

// VerifySchema checks that the active roster table and every staging
// slot exist on this target. Returns the missing table names.
func (s *Store) VerifySchema() ([]string, error) {
	tables := []string{
		activeRosterTable,
		staging.SlotCurrentRosters,
		staging.SlotSkaters,
		staging.SlotGoalies,
		staging.SlotPlayers,
		staging.SlotSeasonSkaters,
		staging.SlotSeasonGoalies,
	}
	return database.VerifyTables(s.db, tables)
}

// Gorm exposes the underlying connection for the feed client's detail
// fetch, which writes into the detail staging slots as a side effect.
func (s *Store) Gorm() *gorm.DB {
	return s.db
}

// Close releases the store connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
