package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-etl/errs"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{Driver: "mysql", TimeoutSeconds: 1}
		target := Target{
			Name:   "primary",
			Driver: "mysql",
			DSN:    "root:wrongpassword@tcp(localhost:9999)/etl?timeout=1s",
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg, target)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In-Memory", func(t *testing.T) {
		cfg := Config{Driver: "sqlite"}
		target := Target{Name: "primary", Driver: "sqlite", DSN: ":memory:"}

		db, err := Connect(cfg, target)
		require.NoError(t, err)
		require.NotNil(t, db)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.NoError(t, sqlDB.Close())
	})
}

func TestTargets(t *testing.T) {
	t.Run("Missing Primary", func(t *testing.T) {
		targets, err := Config{Driver: "mysql"}.Targets()
		assert.Nil(t, targets)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindConfiguration))
	})

	t.Run("Primary Only", func(t *testing.T) {
		cfg := Config{Driver: "mysql", Primary: "root@tcp(db1)/etl"}
		targets, err := cfg.Targets()
		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, "primary", targets[0].Name)
		assert.Equal(t, "root@tcp(db1)/etl", targets[0].DSN)
	})

	t.Run("Primary And Secondaries", func(t *testing.T) {
		cfg := Config{
			Driver:    "mysql",
			Primary:   "root@tcp(db1)/etl",
			Secondary: "root@tcp(db2)/etl, root@tcp(db3)/etl",
		}
		targets, err := cfg.Targets()
		require.NoError(t, err)
		require.Len(t, targets, 3)
		assert.Equal(t, "primary", targets[0].Name)
		assert.Equal(t, "secondary", targets[1].Name)
		assert.Equal(t, "secondary2", targets[2].Name)
		assert.Equal(t, "root@tcp(db3)/etl", targets[2].DSN)
	})

	t.Run("Blank Secondary Entries Skipped", func(t *testing.T) {
		cfg := Config{Driver: "mysql", Primary: "root@tcp(db1)/etl", Secondary: " , "}
		targets, err := cfg.Targets()
		require.NoError(t, err)
		assert.Len(t, targets, 1)
	})
}
