package rank_test

import (
	"context"
	"testing"

	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/gnames/gnkey/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrow(t *testing.T) {
	repo := fixtureRepo()
	// spD knows nothing about X, spE is polymorphic for X
	repo.taxonValues[4] = []int{v3}
	repo.taxonValues[5] = []int{v1, v2}
	r := rank.New(repo)
	ctx := context.Background()
	all := []int{spA, spB, spC, 4, 5}

	tests := []struct {
		msg     string
		answers []int
		want    []int
	}{
		{"no answers", nil, all},
		{"v1", []int{v1}, []int{spA, spB, 4, 5}},
		{"v2", []int{v2}, []int{spC, 4, 5}},
		{"alternatives of one character", []int{v1, v2}, all},
		{"two characters", []int{v2, v3}, []int{spC, 4, 5}},
		{"repeated answer", []int{v1, v1}, []int{spA, spB, 4, 5}},
	}

	for _, v := range tests {
		res, err := r.Narrow(ctx, all, v.answers)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.want, res, v.msg)
	}
}

func TestNarrowEmptySpecies(t *testing.T) {
	r := rank.New(fixtureRepo())
	res, err := r.Narrow(context.Background(), nil, []int{v1})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestNarrowUnknownAnswer(t *testing.T) {
	r := rank.New(fixtureRepo())
	_, err := r.Narrow(context.Background(), []int{spA}, []int{999})
	require.Error(t, err)
	assert.Equal(t, errcode.RankDataIntegrityError, codeOf(t, err))
}

// TestNarrowValueWithoutCharacter checks that a species value with no
// owning character does not stop narrowing by unrelated answers.
func TestNarrowValueWithoutCharacter(t *testing.T) {
	repo := fixtureRepo()
	repo.taxonValues[spC] = []int{v2, 999}
	r := rank.New(repo)

	res, err := r.Narrow(context.Background(), []int{spA, spB, spC}, []int{v1})
	require.NoError(t, err)
	assert.Equal(t, []int{spA, spB}, res)
}

func TestAnsweredCharacters(t *testing.T) {
	r := rank.New(fixtureRepo())
	ctx := context.Background()

	res, err := r.AnsweredCharacters(ctx, []int{v3, v1, v2})
	require.NoError(t, err)
	assert.Equal(t, []int{charX, charY}, res)

	res, err = r.AnsweredCharacters(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, res)

	_, err = r.AnsweredCharacters(ctx, []int{999})
	assert.Equal(t, errcode.RankDataIntegrityError, codeOf(t, err))
}

func TestWithoutCharacters(t *testing.T) {
	scores := []rank.CharacterScore{
		{Score: 0, CharacterID: charY},
		{Score: 0.5, CharacterID: charZ},
		{Score: 1, CharacterID: charX},
	}
	res := rank.WithoutCharacters(scores, []int{charZ})
	assert.Equal(t, []rank.CharacterScore{
		{Score: 0, CharacterID: charY},
		{Score: 1, CharacterID: charX},
	}, res)
	assert.Len(t, rank.WithoutCharacters(scores, nil), 3)
}
