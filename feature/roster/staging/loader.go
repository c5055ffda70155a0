package staging

import (
	"context"
	"reflect"

	"gorm.io/gorm"

	"roster-etl/errs"
)

// Staging slot names consumed by the sync procedures. The procedures
// resolve these tables by exact name, so they must match the store schema.
const (
	// SlotCurrentRosters holds the freshly fetched roster snapshot.
	SlotCurrentRosters = "staging1.current_rosters"
	// SlotSkaters holds the current-season skater statistics snapshot.
	SlotSkaters = "staging1.skaters"
	// SlotGoalies holds the current-season goalie statistics snapshot.
	SlotGoalies = "staging1.goalies"
	// SlotPlayers holds biographical detail for new call-ups.
	SlotPlayers = "staging1.players"
	// SlotSeasonSkaters holds historical skater season splits for call-ups.
	SlotSeasonSkaters = "staging1.season_skaters"
	// SlotSeasonGoalies holds historical goalie season splits for call-ups.
	SlotSeasonGoalies = "staging1.season_goalies"
)

const insertBatchSize = 500

// Loader writes snapshots into staging slots with replace-on-write
// semantics. One Loader is bound to one target store connection.
type Loader struct {
	db *gorm.DB
}

// NewLoader creates a staging loader over the given connection.
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Replace discards the slot's current contents and writes records in
// their place. Delete and insert run inside one transaction so a sync
// procedure never observes a partially loaded slot. An empty snapshot
// is valid and leaves the slot empty.
func (l *Loader) Replace(ctx context.Context, slot string, records any) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + slot).Error; err != nil {
			return err
		}
		if recordCount(records) == 0 {
			return nil
		}
		return tx.Table(slot).CreateInBatches(records, insertBatchSize).Error
	})
	if err != nil {
		return errs.New(errs.KindStorageWrite, slot, err)
	}
	return nil
}

// recordCount reports how many rows the snapshot carries. Snapshots are
// slices of model structs; anything else counts as a single record.
func recordCount(records any) int {
	v := reflect.ValueOf(records)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		return v.Len()
	}
	return 1
}
