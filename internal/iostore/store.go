// Package iostore implements key.Store over key tables in PostgreSQL.
package iostore

import (
	"context"
	"errors"

	"github.com/gnames/gnkey/pkg/db"
	"github.com/gnames/gnkey/pkg/key"
	"github.com/jackc/pgx/v5"
)

// store runs every lookup as a single read-only query, the pool makes it
// safe for concurrent ranking requests.
type store struct {
	operator db.Operator
}

// New creates a key.Store that reads from a connected operator.
func New(op db.Operator) key.Store {
	return &store{operator: op}
}

func (s *store) TaxonValues(
	ctx context.Context,
	taxonIDs []int,
) (map[int][]int, error) {
	q := `
SELECT taxon_id, character_value_id
  FROM taxon_character_values
  WHERE taxon_id = ANY($1)
  ORDER BY taxon_id, character_value_id`

	res := make(map[int][]int, len(taxonIDs))
	err := s.pairs(ctx, "taxon values", q, func(taxonID, valueID int) {
		res[taxonID] = append(res[taxonID], valueID)
	}, taxonIDs)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *store) PileValues(ctx context.Context, pileID int) ([]int, error) {
	q := `
SELECT character_value_id
  FROM pile_character_values
  WHERE pile_id = $1
  ORDER BY character_value_id`
	return s.ids(ctx, "pile values", q, pileID)
}

func (s *store) ValueCharacters(
	ctx context.Context,
	valueIDs []int,
) (map[int]int, error) {
	q := `
SELECT id, character_id
  FROM character_values
  WHERE id = ANY($1)`

	res := make(map[int]int, len(valueIDs))
	err := s.pairs(ctx, "value characters", q, func(valueID, charID int) {
		res[valueID] = charID
	}, valueIDs)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *store) PileBySlug(ctx context.Context, slug string) (key.Pile, error) {
	var res key.Pile
	if s.operator.Pool() == nil {
		return res, NotConnectedError()
	}

	q := `SELECT id, slug, name FROM piles WHERE slug = $1`
	var name *string
	err := s.operator.Pool().QueryRow(ctx, q, slug).
		Scan(&res.ID, &res.Slug, &name)
	if errors.Is(err, pgx.ErrNoRows) {
		return res, key.NotFoundError("pile", slug)
	}
	if err != nil {
		return res, QueryError("pile by slug", err)
	}
	if name != nil {
		res.Name = *name
	}
	return res, nil
}

func (s *store) PileTaxa(ctx context.Context, pileID int) ([]int, error) {
	q := `
SELECT taxon_id
  FROM pile_taxa
  WHERE pile_id = $1
  ORDER BY taxon_id`
	return s.ids(ctx, "pile taxa", q, pileID)
}

func (s *store) ValueByName(
	ctx context.Context,
	shortName, value string,
) (int, error) {
	if s.operator.Pool() == nil {
		return 0, NotConnectedError()
	}

	q := `
SELECT cv.id
  FROM character_values cv
    JOIN characters c ON c.id = cv.character_id
  WHERE c.short_name = $1 AND cv.value = $2`

	var id int
	err := s.operator.Pool().QueryRow(ctx, q, shortName, value).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, key.NotFoundError("character value", shortName+"="+value)
	}
	if err != nil {
		return 0, QueryError("value by name", err)
	}
	return id, nil
}

func (s *store) CharacterNames(
	ctx context.Context,
	charIDs []int,
) (map[int]string, error) {
	if s.operator.Pool() == nil {
		return nil, NotConnectedError()
	}

	q := `SELECT id, name FROM characters WHERE id = ANY($1)`
	rows, err := s.operator.Pool().Query(ctx, q, charIDs)
	if err != nil {
		return nil, QueryError("character names", err)
	}
	defer rows.Close()

	res := make(map[int]string, len(charIDs))
	for rows.Next() {
		var id int
		var name *string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, QueryError("character names", err)
		}
		if name != nil {
			res[id] = *name
		}
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("character names", err)
	}
	return res, nil
}

func (s *store) ids(
	ctx context.Context,
	name, q string,
	args ...any,
) ([]int, error) {
	if s.operator.Pool() == nil {
		return nil, NotConnectedError()
	}

	rows, err := s.operator.Pool().Query(ctx, q, args...)
	if err != nil {
		return nil, QueryError(name, err)
	}

	res, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, QueryError(name, err)
	}
	return res, nil
}

func (s *store) pairs(
	ctx context.Context,
	name, q string,
	fn func(int, int),
	args ...any,
) error {
	if s.operator.Pool() == nil {
		return NotConnectedError()
	}

	rows, err := s.operator.Pool().Query(ctx, q, args...)
	if err != nil {
		return QueryError(name, err)
	}
	defer rows.Close()

	var a, b int
	for rows.Next() {
		if err := rows.Scan(&a, &b); err != nil {
			return QueryError(name, err)
		}
		fn(a, b)
	}
	if err := rows.Err(); err != nil {
		return QueryError(name, err)
	}
	return nil
}
