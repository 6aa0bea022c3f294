// Package lifecycle defines contracts of the database lifecycle of key
// data: schema management and population.
package lifecycle

import (
	"context"

	"github.com/gnames/gnkey/pkg/config"
)

// SchemaManager creates and migrates key tables. It uses GORM
// AutoMigrate, so it is safe to run multiple times.
type SchemaManager interface {
	// Create creates key tables and sets "C" collation on name columns.
	// Dropping existing tables is the caller's decision.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates key tables to the current models.
	Migrate(ctx context.Context, cfg *config.Config) error
}

// Populator replaces content of key tables with a dataset.
type Populator interface {
	// Populate loads the dataset from cfg.Populate.DatasetPath, validates
	// it, and imports it in one transaction.
	Populate(ctx context.Context, cfg *config.Config) error
}
