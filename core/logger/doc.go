// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production). The pipeline is a CLI tool,
// so console encoding is the default; json encoding is available for
// scheduled runs whose output is shipped to a log collector.
//
// # Run Correlation
//
// Each target store's run is tagged with the target name and a run id.
// The WithRun helper attaches both fields so that interleaved output
// from consecutive runs stays attributable.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	l := logger.WithRun(log, "primary", runID)
//	l.Info("Roster sync completed")
package logger
