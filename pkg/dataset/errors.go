package dataset

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// maxIssues limits how many problems are shown to a user.
const maxIssues = 10

// IntegrityError reports referential problems found in a dataset.
func IntegrityError(issues []string) error {
	shown := issues
	if len(shown) > maxIssues {
		shown = shown[:maxIssues]
	}
	lines := make([]string, len(shown))
	for i, v := range shown {
		lines[i] = "  - " + v
	}
	if len(issues) > maxIssues {
		lines = append(lines,
			fmt.Sprintf("  ... and %d more", len(issues)-maxIssues))
	}

	msg := `Dataset has <em>%d</em> integrity problem(s)

%s`
	vars := []any{len(issues), strings.Join(lines, "\n")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: integrity check failed: %s",
			fn.Name(), strings.Join(issues, "; ")),
	}
}
