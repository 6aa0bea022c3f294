package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

func NotConnectedError() error {
	msg := "Key data cannot be read without database connection"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: connection pool is nil", fn.Name()),
	}
}

func QueryError(query string, err error) error {
	msg := "Cannot read %s from database"
	vars := []any{query}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KeyQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: query %s: %w", fn.Name(), query, err),
	}
}
