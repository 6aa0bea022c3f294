package key_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/gnames/gnkey/pkg/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		want  key.Answer
		isErr bool
	}{
		{"simple", "leaf_shape=ovate", key.Answer{"leaf_shape", "ovate"}, false},
		{"spaces", " leaf_shape = ovate ", key.Answer{"leaf_shape", "ovate"}, false},
		{"value with '='", "ratio=1=2", key.Answer{"ratio", "1=2"}, false},
		{"no separator", "leaf_shape", key.Answer{}, true},
		{"no value", "leaf_shape=", key.Answer{}, true},
		{"no name", "=ovate", key.Answer{}, true},
	}

	for _, v := range tests {
		res, err := key.ParseAnswer(v.input)
		if v.isErr {
			var gnErr *gn.Error
			require.True(t, errors.As(err, &gnErr), v.msg)
			assert.Equal(t, errcode.KeyAnswerFormatError, gnErr.Code, v.msg)
			assert.Equal(t, []any{v.input}, gnErr.Vars, v.msg)
			continue
		}
		assert.NoError(t, err, v.msg)
		assert.Equal(t, v.want, res, v.msg)
	}
}
