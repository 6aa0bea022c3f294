package key

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// NotFoundError is returned when a pile or a character value cannot be
// found in the catalog.
func NotFoundError(kind, name string) error {
	msg := "Cannot find %s <em>%s</em>"
	vars := []any{kind, name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KeyNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s %q not found",
			fn.Name(), kind, name),
	}
}

// AnswerFormatError is returned when an answer is not written as
// 'short_name=value'.
func AnswerFormatError(answer string) error {
	msg := `Answer <em>%s</em> must have form <em>character=value</em>,
for example <em>leaf_shape=ovate</em>`
	vars := []any{answer}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KeyAnswerFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: malformed answer %q", fn.Name(), answer),
	}
}
