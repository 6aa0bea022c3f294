package dataset

import (
	"context"
	"slices"

	"github.com/gnames/gnkey/pkg/key"
)

// store serves a Dataset from memory. It is built once and never
// modified, so it is safe for concurrent use.
type store struct {
	taxonValues     map[int][]int
	pileValues      map[int][]int
	pileTaxa        map[int][]int
	valueCharacters map[int]int
	piles           map[string]key.Pile
	valueIDs        map[string]map[string]int
	charNames       map[int]string
}

// NewStore indexes the dataset for ranking and catalog lookups.
// The dataset is not validated, inconsistent references surface as
// ranking errors.
func NewStore(d *Dataset) key.Store {
	res := &store{
		taxonValues:     make(map[int][]int, len(d.Taxa)),
		pileValues:      make(map[int][]int, len(d.Piles)),
		pileTaxa:        make(map[int][]int, len(d.Piles)),
		valueCharacters: make(map[int]int),
		piles:           make(map[string]key.Pile, len(d.Piles)),
		valueIDs:        make(map[string]map[string]int, len(d.Characters)),
		charNames:       make(map[int]string, len(d.Characters)),
	}

	for _, c := range d.Characters {
		res.charNames[c.ID] = c.Name
		vals := make(map[string]int, len(c.Values))
		for _, v := range c.Values {
			res.valueCharacters[v.ID] = c.ID
			vals[v.Value] = v.ID
		}
		res.valueIDs[c.ShortName] = vals
	}

	for _, t := range d.Taxa {
		res.taxonValues[t.ID] = append(res.taxonValues[t.ID], t.ValueIDs...)
	}

	for _, p := range d.Piles {
		res.piles[p.Slug] = key.Pile{ID: p.ID, Slug: p.Slug, Name: p.Name}
		res.pileValues[p.ID] = append(res.pileValues[p.ID], p.ValueIDs...)
		taxa := append(res.pileTaxa[p.ID], p.TaxonIDs...)
		slices.Sort(taxa)
		res.pileTaxa[p.ID] = slices.Compact(taxa)
	}

	return res
}

func (s *store) TaxonValues(
	_ context.Context,
	taxonIDs []int,
) (map[int][]int, error) {
	res := make(map[int][]int, len(taxonIDs))
	for _, id := range taxonIDs {
		if vals, ok := s.taxonValues[id]; ok {
			res[id] = slices.Clone(vals)
		}
	}
	return res, nil
}

func (s *store) PileValues(_ context.Context, pileID int) ([]int, error) {
	return slices.Clone(s.pileValues[pileID]), nil
}

func (s *store) ValueCharacters(
	_ context.Context,
	valueIDs []int,
) (map[int]int, error) {
	res := make(map[int]int, len(valueIDs))
	for _, id := range valueIDs {
		if charID, ok := s.valueCharacters[id]; ok {
			res[id] = charID
		}
	}
	return res, nil
}

func (s *store) PileBySlug(_ context.Context, slug string) (key.Pile, error) {
	p, ok := s.piles[slug]
	if !ok {
		return key.Pile{}, key.NotFoundError("pile", slug)
	}
	return p, nil
}

func (s *store) PileTaxa(_ context.Context, pileID int) ([]int, error) {
	return slices.Clone(s.pileTaxa[pileID]), nil
}

func (s *store) ValueByName(
	_ context.Context,
	shortName, value string,
) (int, error) {
	id, ok := s.valueIDs[shortName][value]
	if !ok {
		return 0, key.NotFoundError("character value", shortName+"="+value)
	}
	return id, nil
}

func (s *store) CharacterNames(
	_ context.Context,
	charIDs []int,
) (map[int]string, error) {
	res := make(map[int]string, len(charIDs))
	for _, id := range charIDs {
		if name, ok := s.charNames[id]; ok {
			res[id] = name
		}
	}
	return res, nil
}
