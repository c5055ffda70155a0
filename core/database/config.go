package database

import (
	"fmt"
	"strings"

	"roster-etl/errs"
)

// Config holds configuration for the target store connections.
type Config struct {
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// Primary is the connection string of the primary target store. Required.
	Primary string `mapstructure:"primary" default:""`
	// Secondary is a comma-separated list of additional target connection strings.
	Secondary string `mapstructure:"secondary" default:""`
	// TimeoutSeconds is the connection verification timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Target identifies one configured store the pipeline runs against.
type Target struct {
	// Name labels the target in logs and summaries (primary, secondary, ...).
	Name string
	// Driver is the database driver for this target.
	Driver string
	// DSN is the connection string.
	DSN string
}

// Targets expands the configuration into the ordered target list.
// The primary store always comes first; its absence is a configuration
// error surfaced before any pipeline runs.
func (c Config) Targets() ([]Target, error) {
	if strings.TrimSpace(c.Primary) == "" {
		return nil, errs.New(errs.KindConfiguration, "database.primary (DATABASE_PRIMARY) is not set", nil)
	}

	targets := []Target{{Name: "primary", Driver: c.Driver, DSN: strings.TrimSpace(c.Primary)}}

	n := 0
	for _, dsn := range strings.Split(c.Secondary, ",") {
		dsn = strings.TrimSpace(dsn)
		if dsn == "" {
			continue
		}
		n++
		name := "secondary"
		if n > 1 {
			name = fmt.Sprintf("secondary%d", n)
		}
		targets = append(targets, Target{Name: name, Driver: c.Driver, DSN: dsn})
	}

	return targets, nil
}
