// Package rank chooses the next question of a multiple-choice
// identification key.
//
// Given the species that are still possible and a pile, every character
// with eligible values gets a score: the sum over its values of
// (count/N)*log2(count), divided by the fraction of species for which the
// character is known at all. Lower scores are better questions.
//
// This is a pure package. Reference data comes through the Repository
// interface; implementations live in pkg/dataset (in-memory) and
// internal/iostore (PostgreSQL).
package rank

import (
	"context"
)

// Repository provides read-only access to identification key data.
// Implementations must not mutate data while a ranking is in progress.
type Repository interface {
	// TaxonValues returns character value IDs known for each of the given
	// taxa. Taxa without data may be absent from the result.
	TaxonValues(ctx context.Context, taxonIDs []int) (map[int][]int, error)

	// PileValues returns IDs of character values eligible in a pile.
	PileValues(ctx context.Context, pileID int) ([]int, error)

	// ValueCharacters maps character value IDs to their owning character
	// IDs. Values without a character are absent from the result.
	ValueCharacters(ctx context.Context, valueIDs []int) (map[int]int, error)
}

// CharacterScore is the score of one character. Smaller scores mean
// the character splits remaining species better.
type CharacterScore struct {
	Score       float64 `json:"score"`
	CharacterID int     `json:"characterId"`
}

// Ranker finds the most useful characters to ask about.
// It keeps no state between calls and is safe for concurrent use.
type Ranker interface {
	// BestCharacters returns scores of all characters of the pile that have
	// values among the given species, sorted by score and character ID.
	// An empty species list is an invalid argument. A pile without
	// eligible values for the species gives an empty result.
	BestCharacters(
		ctx context.Context,
		pileID int,
		speciesIDs []int,
	) ([]CharacterScore, error)

	// Narrow removes species that contradict the given answers
	// (character value IDs).
	Narrow(ctx context.Context, speciesIDs, answers []int) ([]int, error)

	// AnsweredCharacters returns sorted IDs of characters the answers
	// belong to.
	AnsweredCharacters(ctx context.Context, answers []int) ([]int, error)
}

type ranker struct {
	repo Repository
}

// New creates a Ranker that reads reference data from repo.
func New(repo Repository) Ranker {
	return &ranker{repo: repo}
}

func (r *ranker) BestCharacters(
	ctx context.Context,
	pileID int,
	speciesIDs []int,
) ([]CharacterScore, error) {
	species := uniqueIDs(speciesIDs)
	if len(species) == 0 {
		return nil, InvalidArgumentError("species list is empty")
	}

	taxonValues, err := r.repo.TaxonValues(ctx, species)
	if err != nil {
		return nil, RepositoryError("taxon values", err)
	}

	pileValues, err := r.repo.PileValues(ctx, pileID)
	if err != nil {
		return nil, RepositoryError("pile values", err)
	}

	valueIDs := eligibleValues(species, taxonValues, pileValues)
	if len(valueIDs) == 0 {
		return []CharacterScore{}, nil
	}

	valueCharacters, err := r.repo.ValueCharacters(ctx, valueIDs)
	if err != nil {
		return nil, RepositoryError("value characters", err)
	}

	return Score(species, taxonValues, pileValues, valueCharacters)
}
