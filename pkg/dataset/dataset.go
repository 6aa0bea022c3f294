// Package dataset describes reference data of an identification key as
// delivered by curators: characters with their values, taxa with known
// values and piles.
//
// The same structure is read from YAML files and from SQLite archives
// (see internal/iodataset). A Dataset can serve ranking directly through
// NewStore, or be imported into PostgreSQL.
package dataset

// Dataset is a complete snapshot of key reference data.
type Dataset struct {
	Characters []Character `yaml:"characters"`
	Taxa       []Taxon     `yaml:"taxa"`
	Piles      []Pile      `yaml:"piles"`
}

// Character is an observable trait, for example leaf shape.
type Character struct {
	ID int `yaml:"id"`
	// ShortName is a unique, machine-friendly name (leaf_shape).
	ShortName string `yaml:"short_name"`
	// Name is shown to users (Leaf shape).
	Name   string           `yaml:"name"`
	Values []CharacterValue `yaml:"values"`
}

// CharacterValue is one discrete state of a character.
type CharacterValue struct {
	ID    int    `yaml:"id"`
	Value string `yaml:"value"`
}

// Taxon is a species with the character values known for it.
type Taxon struct {
	ID             int    `yaml:"id"`
	ScientificName string `yaml:"scientific_name"`
	// ValueIDs may contain several values of one character
	// (polymorphic traits).
	ValueIDs []int `yaml:"values,flow"`
}

// Pile groups taxa and restricts character values usable for them.
type Pile struct {
	ID       int    `yaml:"id"`
	Slug     string `yaml:"slug"`
	Name     string `yaml:"name"`
	TaxonIDs []int  `yaml:"taxa,flow"`
	ValueIDs []int  `yaml:"character_values,flow"`
}

// Stats returns a number of records of each kind.
func (d *Dataset) Stats() map[string]int {
	var values, assignments, pileTaxa, pileValues int
	for _, c := range d.Characters {
		values += len(c.Values)
	}
	for _, t := range d.Taxa {
		assignments += len(t.ValueIDs)
	}
	for _, p := range d.Piles {
		pileTaxa += len(p.TaxonIDs)
		pileValues += len(p.ValueIDs)
	}
	return map[string]int{
		"characters":             len(d.Characters),
		"character_values":       values,
		"taxa":                   len(d.Taxa),
		"taxon_character_values": assignments,
		"piles":                  len(d.Piles),
		"pile_taxa":              pileTaxa,
		"pile_character_values":  pileValues,
	}
}
