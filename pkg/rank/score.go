package rank

import (
	"cmp"
	"maps"
	"math"
	"slices"
)

type empty = struct{}

// Score ranks characters for the given species without any I/O.
//
// taxonValues maps species to their character value IDs, pileValues lists
// the values eligible in the pile, valueCharacters maps values to their
// characters and must cover every eligible value observed among the
// species. Repeated species IDs and repeated value assignments are counted
// once.
func Score(
	speciesIDs []int,
	taxonValues map[int][]int,
	pileValues []int,
	valueCharacters map[int]int,
) ([]CharacterScore, error) {
	species := uniqueIDs(speciesIDs)
	if len(species) == 0 {
		return nil, InvalidArgumentError("species list is empty")
	}
	n := float64(len(species))

	t := newTally(species, taxonValues, pileValues)
	if len(t.speciesCount) == 0 {
		return []CharacterScore{}, nil
	}

	charValues, err := t.groupByCharacter(valueCharacters)
	if err != nil {
		return nil, err
	}
	charSpecies := t.coverage(valueCharacters)

	res := make([]CharacterScore, 0, len(charValues))
	for charID, valueIDs := range charValues {
		var entropy float64
		for _, id := range valueIDs {
			entropy += valueEntropy(float64(t.speciesCount[id]), n)
		}
		coverage := float64(len(charSpecies[charID])) / n
		penalty := 1 / coverage
		res = append(res, CharacterScore{
			Score:       entropy * penalty,
			CharacterID: charID,
		})
	}

	slices.SortFunc(res, compareScores)
	return res, nil
}

// valueEntropy is not Shannon entropy. The formula is kept as is because
// identification keys in use were tuned with it.
func valueEntropy(m, n float64) float64 {
	return m / n * math.Log2(m)
}

func compareScores(a, b CharacterScore) int {
	if c := cmp.Compare(a.Score, b.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.CharacterID, b.CharacterID)
}

// tally keeps eligible values observed for each species.
type tally struct {
	// species is deduplicated input in original order.
	species []int
	// values holds eligible value IDs of each species, sorted, unique.
	values map[int][]int
	// speciesCount is the number of species asserting a value.
	speciesCount map[int]int
}

func newTally(
	species []int,
	taxonValues map[int][]int,
	pileValues []int,
) *tally {
	eligible := make(map[int]empty, len(pileValues))
	for _, id := range pileValues {
		eligible[id] = empty{}
	}

	res := &tally{
		species:      species,
		values:       make(map[int][]int, len(species)),
		speciesCount: make(map[int]int),
	}

	for _, sp := range species {
		var vals []int
		for _, id := range taxonValues[sp] {
			if _, ok := eligible[id]; ok {
				vals = append(vals, id)
			}
		}
		slices.Sort(vals)
		vals = slices.Compact(vals)
		for _, id := range vals {
			res.speciesCount[id]++
		}
		res.values[sp] = vals
	}
	return res
}

// groupByCharacter returns sorted value IDs of every character.
func (t *tally) groupByCharacter(
	valueCharacters map[int]int,
) (map[int][]int, error) {
	res := make(map[int][]int)
	for _, id := range slices.Sorted(maps.Keys(t.speciesCount)) {
		charID, ok := valueCharacters[id]
		if !ok {
			return nil, DataIntegrityError(id)
		}
		res[charID] = append(res[charID], id)
	}
	return res, nil
}

// coverage returns species having any eligible value of a character.
func (t *tally) coverage(valueCharacters map[int]int) map[int]map[int]empty {
	res := make(map[int]map[int]empty)
	for _, sp := range t.species {
		for _, id := range t.values[sp] {
			charID := valueCharacters[id]
			if res[charID] == nil {
				res[charID] = make(map[int]empty)
			}
			res[charID][sp] = empty{}
		}
	}
	return res
}

// eligibleValues returns sorted IDs of pile values observed among species.
func eligibleValues(
	species []int,
	taxonValues map[int][]int,
	pileValues []int,
) []int {
	t := newTally(species, taxonValues, pileValues)
	return slices.Sorted(maps.Keys(t.speciesCount))
}

// uniqueIDs removes repeated IDs keeping the first occurrence.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]empty, len(ids))
	res := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = empty{}
		res = append(res, id)
	}
	return res
}
