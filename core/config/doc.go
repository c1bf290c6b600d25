// Package config provides configuration management for the catalog web service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (godotenv). Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, read timeout)
//   - Database: catalog database connection (mysql or sqlite)
//   - Storage: S3/MinIO credentials and the report bucket
//   - Log: Logging level, format and optional rotated log file
//   - Events: Kafka brokers and topic for variation events
//   - Catalog: count cache lifetime and audit report location
//
// Nested keys map to upper-case environment variables, e.g. catalog.report_prefix
// is read from CATALOG_REPORT_PREFIX.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
