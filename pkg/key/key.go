// Package key defines lookups the identification key needs besides
// ranking itself: piles by slug, character values by name, character
// names for display.
package key

import (
	"context"

	"github.com/gnames/gnkey/pkg/rank"
)

// Pile is a curated group of species with its own set of usable
// character values.
type Pile struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Catalog resolves human-facing identifiers.
type Catalog interface {
	// PileBySlug finds a pile, returns NotFoundError if there is none.
	PileBySlug(ctx context.Context, slug string) (Pile, error)

	// PileTaxa returns sorted IDs of species that belong to a pile.
	PileTaxa(ctx context.Context, pileID int) ([]int, error)

	// ValueByName finds ID of a character value by the short name of its
	// character and the value string.
	ValueByName(ctx context.Context, shortName, value string) (int, error)

	// CharacterNames returns display names for character IDs.
	CharacterNames(ctx context.Context, charIDs []int) (map[int]string, error)
}

// Store gives everything needed for one step of an identification.
type Store interface {
	rank.Repository
	Catalog
}
