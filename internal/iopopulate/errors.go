package iopopulate

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// NotConnectedError creates an error for when populate
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Populate operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

func ParseError(err error) error {
	msg := "Cannot parse scientific names of taxa"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PopulateParseError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: name parsing failed: %w", fn.Name(), err),
	}
}

func TruncateError(err error) error {
	msg := "Cannot remove previous key data"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PopulateTruncateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: truncate failed: %w", fn.Name(), err),
	}
}

func InsertError(table string, err error) error {
	msg := `Cannot import data into <em>%s</em>

<em>How to fix:</em>
  1. Make sure key tables are up to date: <em>gnkey migrate</em>
  2. Check the log for details`
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PopulateInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: copy into %s failed: %w",
			fn.Name(), table, err),
	}
}

func TransactionError(err error) error {
	msg := "Import transaction failed, previous key data are kept"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PopulateTransactionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: transaction failed: %w", fn.Name(), err),
	}
}
