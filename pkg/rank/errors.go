package rank

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// InvalidArgumentError is returned when ranking input is unusable,
// for example when there are no species to rank characters for.
func InvalidArgumentError(reason string) error {
	msg := "Cannot rank characters: <em>%s</em>"
	vars := []any{reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RankInvalidArgumentError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid argument: %s",
			fn.Name(), reason),
	}
}

// DataIntegrityError is returned when a character value has no owning
// character.
func DataIntegrityError(valueID int) error {
	msg := `Character value <em>%d</em> does not belong to any character

<em>How to fix:</em>
  1. Check the dataset with 'gnkey populate'
  2. Repair character_values records upstream`
	vars := []any{valueID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RankDataIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: character value %d has no character",
			fn.Name(), valueID),
	}
}

// RepositoryError wraps failures of reference data queries.
func RepositoryError(query string, err error) error {
	msg := "Cannot read <em>%s</em> for ranking"
	vars := []any{query}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RankRepositoryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: query %s: %w",
			fn.Name(), query, err),
	}
}
