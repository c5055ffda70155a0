package staging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"roster-etl/errs"
	"roster-etl/feature/roster/models"
)

func setupSlotDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Unqualified slot name; production slots are schema-qualified but the
	// loader treats the slot as an opaque table name either way.
	err = db.Exec(`CREATE TABLE roster_stage (
		playerId INTEGER,
		teamAbbrev TEXT,
		position TEXT,
		firstName TEXT,
		lastName TEXT,
		sweaterNumber INTEGER
	)`).Error
	require.NoError(t, err)

	return db
}

func slotCount(t *testing.T, db *gorm.DB, slot string) int64 {
	var n int64
	require.NoError(t, db.Table(slot).Count(&n).Error)
	return n
}

func TestReplace_WritesSnapshot(t *testing.T) {
	db := setupSlotDB(t)
	loader := NewLoader(db)

	records := []models.RosterRecord{
		{PlayerID: 1, TeamAbbrev: "BOS", Position: "C"},
		{PlayerID: 2, TeamAbbrev: "BOS", Position: "D"},
		{PlayerID: 3, TeamAbbrev: "NYR", Position: "G"},
	}

	require.NoError(t, loader.Replace(context.Background(), "roster_stage", records))
	assert.EqualValues(t, 3, slotCount(t, db, "roster_stage"))
}

func TestReplace_DiscardsPriorContents(t *testing.T) {
	db := setupSlotDB(t)
	loader := NewLoader(db)
	ctx := context.Background()

	first := []models.RosterRecord{{PlayerID: 1}, {PlayerID: 2}, {PlayerID: 3}}
	require.NoError(t, loader.Replace(ctx, "roster_stage", first))

	second := []models.RosterRecord{{PlayerID: 4}, {PlayerID: 5}}
	require.NoError(t, loader.Replace(ctx, "roster_stage", second))

	// Replace semantics, not additive: only the second snapshot remains.
	assert.EqualValues(t, 2, slotCount(t, db, "roster_stage"))

	var ids []int64
	require.NoError(t, db.Table("roster_stage").Order("playerId").Pluck("playerId", &ids).Error)
	assert.Equal(t, []int64{4, 5}, ids)
}

func TestReplace_IsIdempotent(t *testing.T) {
	db := setupSlotDB(t)
	loader := NewLoader(db)
	ctx := context.Background()

	records := []models.RosterRecord{{PlayerID: 1}, {PlayerID: 2}}
	require.NoError(t, loader.Replace(ctx, "roster_stage", records))
	require.NoError(t, loader.Replace(ctx, "roster_stage", records))

	// Loading the same snapshot twice equals one load.
	assert.EqualValues(t, 2, slotCount(t, db, "roster_stage"))
}

func TestReplace_EmptySnapshotEmptiesSlot(t *testing.T) {
	db := setupSlotDB(t)
	loader := NewLoader(db)
	ctx := context.Background()

	require.NoError(t, loader.Replace(ctx, "roster_stage", []models.RosterRecord{{PlayerID: 1}}))
	require.NoError(t, loader.Replace(ctx, "roster_stage", []models.RosterRecord{}))

	assert.EqualValues(t, 0, slotCount(t, db, "roster_stage"))
}

func TestReplace_RejectedWriteIsStorageWriteError(t *testing.T) {
	db := setupSlotDB(t)
	loader := NewLoader(db)

	err := loader.Replace(context.Background(), "missing_slot", []models.RosterRecord{{PlayerID: 1}})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindStorageWrite))
}
