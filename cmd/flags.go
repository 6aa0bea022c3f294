package cmd

import (
	"strings"

	"github.com/gnames/gnkey/pkg/key"
)

// parseAnswers converts values of repeated --answer flags.
func parseAnswers(ss []string) ([]key.Answer, error) {
	res := make([]key.Answer, 0, len(ss))
	for _, v := range ss {
		if strings.TrimSpace(v) == "" {
			continue
		}
		a, err := key.ParseAnswer(v)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}
