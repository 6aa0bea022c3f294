// Package ioschema implements lifecycle.SchemaManager with GORM
// AutoMigrate over the pgx connection pool.
package ioschema

import (
	"context"

	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/db"
	"github.com/gnames/gnkey/pkg/lifecycle"
	"github.com/gnames/gnkey/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates key tables using GORM AutoMigrate and sets
// collation of name columns.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}

	return nil
}

// Migrate updates key tables to the current models.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	return nil
}

// setCollation sets "C" collation on name columns, so names sort
// bytewise in listings of pile taxa.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	type columnDef struct {
		table, column string
		varchar       int
	}

	columns := []columnDef{
		{"taxa", "scientific_name", 255},
		{"taxa", "canonical", 255},
	}

	qStr := `ALTER TABLE %s ALTER COLUMN %s ` +
		`TYPE VARCHAR(%d) COLLATE "C"`

	for _, col := range columns {
		q := formatCollationSQL(qStr, col.table,
			col.column, col.varchar)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}

func (m *manager) gormDB() (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(m.operator.Pool())

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Discard},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}
