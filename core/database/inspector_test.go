package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func inspectorTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestTableColumns(t *testing.T) {
	db := inspectorTestDB(t)
	require.NoError(t, db.Exec("CREATE TABLE rosters (playerId INTEGER, teamAbbrev TEXT)").Error)

	columns, err := TableColumns(db, "rosters")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "playerid", columns[0].Field)
	assert.Equal(t, "integer", columns[0].Type)
	assert.Equal(t, "teamabbrev", columns[1].Field)
}

func TestTableColumnsQualifiedName(t *testing.T) {
	db := inspectorTestDB(t)
	require.NoError(t, db.Exec("ATTACH DATABASE ':memory:' AS staging1").Error)
	require.NoError(t, db.Exec("CREATE TABLE staging1.current_rosters (playerId INTEGER)").Error)

	columns, err := TableColumns(db, "staging1.current_rosters")
	require.NoError(t, err)
	require.Len(t, columns, 1)
	assert.Equal(t, "playerid", columns[0].Field)
}

func TestVerifyTables(t *testing.T) {
	db := inspectorTestDB(t)
	require.NoError(t, db.Exec("CREATE TABLE present (id INTEGER)").Error)

	missing, err := VerifyTables(db, []string{"present", "absent", "also_absent"})
	require.NoError(t, err)
	assert.Equal(t, []string{"absent", "also_absent"}, missing)
}
