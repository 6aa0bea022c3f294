package rank

import (
	"context"
	"maps"
	"slices"
)

// Narrow keeps species that agree with every answer. A species agrees
// with an answered value when it asserts that value, or when nothing is
// known about the answered character for it. Every answer must belong to
// a character; species values without a character cannot concern any
// answer and are ignored.
func (r *ranker) Narrow(
	ctx context.Context,
	speciesIDs, answers []int,
) ([]int, error) {
	species := uniqueIDs(speciesIDs)
	answers = uniqueIDs(answers)
	if len(species) == 0 || len(answers) == 0 {
		return species, nil
	}

	taxonValues, err := r.repo.TaxonValues(ctx, species)
	if err != nil {
		return nil, RepositoryError("taxon values", err)
	}

	ids := slices.Clone(answers)
	for _, sp := range species {
		ids = append(ids, taxonValues[sp]...)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	valueCharacters, err := r.repo.ValueCharacters(ctx, ids)
	if err != nil {
		return nil, RepositoryError("value characters", err)
	}
	for _, id := range answers {
		if _, ok := valueCharacters[id]; !ok {
			return nil, DataIntegrityError(id)
		}
	}

	// required values per answered character
	wanted := make(map[int]map[int]empty)
	for _, id := range answers {
		charID := valueCharacters[id]
		if wanted[charID] == nil {
			wanted[charID] = make(map[int]empty)
		}
		wanted[charID][id] = empty{}
	}

	res := make([]int, 0, len(species))
	for _, sp := range species {
		if agrees(taxonValues[sp], wanted, valueCharacters) {
			res = append(res, sp)
		}
	}
	return res, nil
}

// agrees checks one species against answered characters. Several answers
// for the same character are alternatives.
func agrees(
	values []int,
	wanted map[int]map[int]empty,
	valueCharacters map[int]int,
) bool {
	known := make(map[int]bool, len(wanted))
	for _, id := range values {
		charID, ok := valueCharacters[id]
		if !ok {
			continue
		}
		vals, ok := wanted[charID]
		if !ok {
			continue
		}
		if _, hit := vals[id]; hit {
			known[charID] = true
		} else if !known[charID] {
			known[charID] = false
		}
	}
	for _, match := range known {
		if !match {
			return false
		}
	}
	return true
}

func (r *ranker) AnsweredCharacters(
	ctx context.Context,
	answers []int,
) ([]int, error) {
	answers = uniqueIDs(answers)
	if len(answers) == 0 {
		return nil, nil
	}

	valueCharacters, err := r.repo.ValueCharacters(ctx, answers)
	if err != nil {
		return nil, RepositoryError("value characters", err)
	}

	chars := make(map[int]empty, len(answers))
	for _, id := range answers {
		charID, ok := valueCharacters[id]
		if !ok {
			return nil, DataIntegrityError(id)
		}
		chars[charID] = empty{}
	}
	return slices.Sorted(maps.Keys(chars)), nil
}

// WithoutCharacters drops scores of the given characters, keeping order.
func WithoutCharacters(
	scores []CharacterScore,
	charIDs []int,
) []CharacterScore {
	res := make([]CharacterScore, 0, len(scores))
	for _, v := range scores {
		if !slices.Contains(charIDs, v.CharacterID) {
			res = append(res, v)
		}
	}
	return res
}
