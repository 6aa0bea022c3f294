// Package db defines the contract of the PostgreSQL operator used by
// schema, populate and ranking components.
package db

import (
	"context"

	"github.com/gnames/gnkey/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator provides connection lifecycle management and exposes the
// pgxpool.Pool to components that run their own SQL (schema manager,
// populator, key store).
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. Components use it for
	// transactions, bulk inserts (CopyFrom), and queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error
}
