package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Could not connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database <em>%s</em> exists and user <em>%s</em> can access it.
  3. Check <em>~/.config/gnkey/config.yaml</em> or GNKEY_DATABASE_* variables.
     Database: %s`
	vars := []any{host, port, database, user, database}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s:%d/%s: %w",
			fn.Name(), host, port, database, err),
	}
}

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: connection pool is nil", fn.Name()),
	}
}

func TableCheckError(err error) error {
	msg := "Could not verify database state"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: failed to check database tables: %w",
			fn.Name(), err),
	}
}

func TableExistsCheckError(table string, err error) error {
	msg := "Could not check if table <em>%s</em> exists"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to check table %s: %w",
			fn.Name(), table, err),
	}
}

func QueryTablesError(err error) error {
	msg := "Could not get the list of tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: failed to query tables: %w", fn.Name(), err),
	}
}

func ScanTableError(err error) error {
	msg := "Could not read the list of tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: failed to scan table name: %w", fn.Name(), err),
	}
}

func DropTableError(table string, err error) error {
	msg := "Could not drop table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to drop table %s: %w",
			fn.Name(), table, err),
	}
}

// EmptyDatabaseError is returned when key tables have no data.
func EmptyDatabaseError(host, database string) error {
	msg := `Database <em>%s</em> on %s has no key data

<em>Required steps:</em>
  1. <em>gnkey create</em>
  2. <em>gnkey populate -i dataset.yaml</em>`
	vars := []any{database, host}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: database %s has no key tables",
			fn.Name(), database),
	}
}
