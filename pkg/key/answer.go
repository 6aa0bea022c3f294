package key

import (
	"context"
	"strings"
)

// Answer is a user's answer to a character question, for example
// "leaf_shape=ovate".
type Answer struct {
	ShortName string
	Value     string
}

// ParseAnswer splits an answer in the form 'short_name=value'.
func ParseAnswer(s string) (Answer, error) {
	name, val, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	val = strings.TrimSpace(val)
	if !ok || name == "" || val == "" {
		return Answer{}, AnswerFormatError(s)
	}
	return Answer{ShortName: name, Value: val}, nil
}

// ResolveAnswers converts answers to character value IDs.
func ResolveAnswers(
	ctx context.Context,
	cat Catalog,
	answers []Answer,
) ([]int, error) {
	res := make([]int, 0, len(answers))
	for _, v := range answers {
		id, err := cat.ValueByName(ctx, v.ShortName, v.Value)
		if err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, nil
}
