// Package iotesting provides shared test utilities for integration tests.
package iotesting

import (
	"os"
	"strconv"

	"github.com/gnames/gnkey/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// Tests never run against a production database.
	TestDatabaseName = "gnkey_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Connection settings come from GNKEY_DATABASE_* environment variables
// or defaults, the database name is always TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if v := os.Getenv("GNKEY_DATABASE_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("GNKEY_DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if v := os.Getenv("GNKEY_DATABASE_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("GNKEY_DATABASE_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}
