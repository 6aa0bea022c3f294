// Package config provides configuration management for GNkey.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Rank: limit, format
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Populate.DatasetPath (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNKEY_ prefix with underscores for nesting:
//
//	GNKEY_DATABASE_HOST=localhost
//	GNKEY_DATABASE_PORT=5432
//	GNKEY_RANK_LIMIT=10
//	GNKEY_LOG_LEVEL=info
//	GNKEY_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNkey configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Populate contains settings specific to the populate command.
	Populate PopulateConfig `mapstructure:"populate" yaml:"populate"`

	// Rank contains settings of the character ranking output.
	Rank RankConfig `mapstructure:"rank" yaml:"rank"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows sent per CopyFrom call during
	// populate. Key datasets are small, the limit mostly keeps progress
	// bars informative.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// PopulateConfig contains settings specific to the populate command.
type PopulateConfig struct {
	// DatasetPath is the YAML or SQLite file with key reference data.
	DatasetPath string `mapstructure:"dataset_path" yaml:"dataset_path"`
}

// RankConfig contains settings for printing ranked characters.
type RankConfig struct {
	// Limit is the maximal number of characters shown by the rank command.
	Limit int `mapstructure:"limit" yaml:"limit"`

	// Format of the output: 'text' or 'json'.
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnkey",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Rank: RankConfig{
			Limit:  10,
			Format: "text",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
