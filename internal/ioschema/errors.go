package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// NotConnectedError is returned when schema operation is attempted
// without database connection.
func NotConnectedError() error {
	msg := "Key tables cannot be changed without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

func GORMConnectionError(err error) error {
	msg := `Cannot open GORM session over the connection pool

<em>How to fix:</em>
  1. Ensure the database is reachable: <em>pg_isready</em>
  2. Check database settings in <em>~/.config/gnkey/config.yaml</em>`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

func CreateSchemaError(err error) error {
	msg := `Cannot create key tables

<em>Possible causes:</em>
  - Insufficient database permissions
  - Tables from another application use the same names

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Run <em>gnkey create --force</em> on a dedicated database`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

func MigrateSchemaError(err error) error {
	msg := `Cannot migrate key tables

<em>How to fix:</em>
  1. Check database user has ALTER permissions
  2. Recreate tables with <em>gnkey create --force</em> and populate
     them again`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

func CollationError(table, column string, err error) error {
	msg := `Cannot set collation on <em>%s.%s</em>`
	vars := []any{table, column}

	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"failed to set collation on %s.%s: %w",
			table, column, err),
	}
}
