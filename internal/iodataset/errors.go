package iodataset

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

func FormatError(path string) error {
	msg := `Unknown dataset format of <em>%s</em>

Use <em>.yaml</em>, <em>.yml</em> for YAML files,
<em>.sqlite</em>, <em>.db</em> for SQLite archives.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown extension of %s", fn.Name(), path),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot read dataset <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write dataset <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn.Name(), path, err),
	}
}
