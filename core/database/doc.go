// Package database handles target store connections.
//
// It provides a wrapper around GORM to configure MySQL connections from
// the operator-supplied connection strings, and expands the primary plus
// optional secondary connection strings into the ordered target list the
// runner iterates. The sqlite driver is supported for in-memory tests.
//
// # Usage
//
//	targets, err := cfg.Database.Targets()
//	if err != nil {
//	    // missing primary connection string, fatal before any run
//	}
//	db, err := database.Connect(cfg.Database, targets[0])
package database
