package dataset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/gnames/gnkey/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// acerKey builds a small key: three maples share leaf arrangement,
// differ in leaf lobes.
func acerKey() *dataset.Dataset {
	return &dataset.Dataset{
		Characters: []dataset.Character{
			{
				ID: 1, ShortName: "leaf_lobes", Name: "Number of leaf lobes",
				Values: []dataset.CharacterValue{
					{ID: 11, Value: "3"},
					{ID: 12, Value: "5"},
				},
			},
			{
				ID: 2, ShortName: "bark_color", Name: "Bark color",
				Values: []dataset.CharacterValue{
					{ID: 21, Value: "gray"},
				},
			},
			{
				ID: 3, ShortName: "leaf_arrangement", Name: "Leaf arrangement",
				Values: []dataset.CharacterValue{
					{ID: 31, Value: "opposite"},
				},
			},
		},
		Taxa: []dataset.Taxon{
			{ID: 101, ScientificName: "Acer rubrum L.", ValueIDs: []int{11, 21, 31}},
			{ID: 102, ScientificName: "Acer negundo L.", ValueIDs: []int{11, 31}},
			{ID: 103, ScientificName: "Acer saccharum Marshall", ValueIDs: []int{12, 31}},
		},
		Piles: []dataset.Pile{
			{
				ID: 1, Slug: "woody-angiosperms", Name: "Woody angiosperms",
				TaxonIDs: []int{103, 101, 102},
				ValueIDs: []int{11, 12, 21},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, acerKey().Validate())
}

func TestValidateProblems(t *testing.T) {
	tests := []struct {
		msg    string
		modify func(*dataset.Dataset)
		issue  string
	}{
		{
			msg:    "duplicate character",
			modify: func(d *dataset.Dataset) { d.Characters[1].ID = 1 },
			issue:  "duplicate character id 1",
		},
		{
			msg:    "duplicate short name",
			modify: func(d *dataset.Dataset) { d.Characters[1].ShortName = "leaf_lobes" },
			issue:  "share short_name",
		},
		{
			msg: "value in two characters",
			modify: func(d *dataset.Dataset) {
				d.Characters[1].Values[0].ID = 11
			},
			issue: "character value 11 belongs to characters 1 and 2",
		},
		{
			msg: "taxon with unknown value",
			modify: func(d *dataset.Dataset) {
				d.Taxa[0].ValueIDs = append(d.Taxa[0].ValueIDs, 99)
			},
			issue: "taxon 101 refers to unknown character value 99",
		},
		{
			msg:    "duplicate taxon",
			modify: func(d *dataset.Dataset) { d.Taxa[2].ID = 101 },
			issue:  "duplicate taxon id 101",
		},
		{
			msg: "pile with unknown taxon",
			modify: func(d *dataset.Dataset) {
				d.Piles[0].TaxonIDs = append(d.Piles[0].TaxonIDs, 999)
			},
			issue: "unknown taxon 999",
		},
		{
			msg: "pile with unknown value",
			modify: func(d *dataset.Dataset) {
				d.Piles[0].ValueIDs = append(d.Piles[0].ValueIDs, 77)
			},
			issue: "unknown character value 77",
		},
		{
			msg: "duplicate slug",
			modify: func(d *dataset.Dataset) {
				d.Piles = append(d.Piles, dataset.Pile{ID: 2, Slug: "woody-angiosperms"})
			},
			issue: "duplicate pile slug",
		},
	}

	for _, v := range tests {
		d := acerKey()
		v.modify(d)
		err := d.Validate()
		require.Error(t, err, v.msg)

		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, errcode.DatasetIntegrityError, gnErr.Code, v.msg)
		assert.ErrorContains(t, gnErr.Err, v.issue, v.msg)
	}
}

func TestStats(t *testing.T) {
	stats := acerKey().Stats()
	assert.Equal(t, 3, stats["characters"])
	assert.Equal(t, 4, stats["character_values"])
	assert.Equal(t, 3, stats["taxa"])
	assert.Equal(t, 7, stats["taxon_character_values"])
	assert.Equal(t, 1, stats["piles"])
	assert.Equal(t, 3, stats["pile_taxa"])
	assert.Equal(t, 3, stats["pile_character_values"])
}

func TestStoreCatalog(t *testing.T) {
	s := dataset.NewStore(acerKey())
	ctx := context.Background()

	p, err := s.PileBySlug(ctx, "woody-angiosperms")
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Woody angiosperms", p.Name)

	_, err = s.PileBySlug(ctx, "ferns")
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.KeyNotFoundError, gnErr.Code)

	taxa, err := s.PileTaxa(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{101, 102, 103}, taxa)

	id, err := s.ValueByName(ctx, "leaf_lobes", "5")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = s.ValueByName(ctx, "leaf_lobes", "7")
	assert.Error(t, err)

	names, err := s.CharacterNames(ctx, []int{1, 3, 42})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{
		1: "Number of leaf lobes",
		3: "Leaf arrangement",
	}, names)
}

func TestStoreRanking(t *testing.T) {
	s := dataset.NewStore(acerKey())
	r := rank.New(s)
	ctx := context.Background()

	species, err := s.PileTaxa(ctx, 1)
	require.NoError(t, err)

	res, err := r.BestCharacters(ctx, 1, species)
	require.NoError(t, err)

	// bark_color: only rubrum, score 0; leaf_lobes: (2/3)*1;
	// leaf_arrangement is not usable in the pile.
	require.Len(t, res, 2)
	assert.Equal(t, 2, res[0].CharacterID)
	assert.Equal(t, 0.0, res[0].Score)
	assert.Equal(t, 1, res[1].CharacterID)
	assert.InDelta(t, 2.0/3.0, res[1].Score, 1e-9)

	narrowed, err := r.Narrow(ctx, species, []int{11})
	require.NoError(t, err)
	assert.Equal(t, []int{101, 102}, narrowed)

	res, err = r.BestCharacters(ctx, 1, narrowed)
	require.NoError(t, err)
	answered, err := r.AnsweredCharacters(ctx, []int{11})
	require.NoError(t, err)
	res = rank.WithoutCharacters(res, answered)
	require.Len(t, res, 1)
	assert.Equal(t, 2, res[0].CharacterID)
}

func TestStoreRankingUnresolvedValue(t *testing.T) {
	d := acerKey()
	d.Taxa[0].ValueIDs = append(d.Taxa[0].ValueIDs, 99)
	d.Piles[0].ValueIDs = append(d.Piles[0].ValueIDs, 99)

	r := rank.New(dataset.NewStore(d))
	_, err := r.BestCharacters(context.Background(), 1, []int{101, 102, 103})
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.RankDataIntegrityError, gnErr.Code)
}
