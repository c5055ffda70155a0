// Package config provides configuration management for the roster ETL.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Database: target store DSNs and driver
//   - Feed: NHL API endpoints and timeouts
//   - Log: Logging level and format
//   - Archive: snapshot archive toggle and key prefix
//   - Storage: S3/MinIO credentials and bucket settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Primary)
package config
