package iodataset

import (
	"github.com/gnames/gnkey/pkg/dataset"
)

// Rows flattens a dataset into rows of a key table. Columns follow
// schema.Columns of the table model, repeated join rows are kept.
func Rows(d *dataset.Dataset, table string) [][]any {
	var res [][]any
	switch table {
	case "characters":
		for _, c := range d.Characters {
			res = append(res, []any{c.ID, c.ShortName, c.Name})
		}
	case "character_values":
		for _, c := range d.Characters {
			for _, v := range c.Values {
				res = append(res, []any{v.ID, c.ID, v.Value})
			}
		}
	case "taxa":
		for _, t := range d.Taxa {
			res = append(res, []any{t.ID, t.ScientificName})
		}
	case "taxon_character_values":
		for _, t := range d.Taxa {
			for _, v := range t.ValueIDs {
				res = append(res, []any{t.ID, v})
			}
		}
	case "piles":
		for _, p := range d.Piles {
			res = append(res, []any{p.ID, p.Slug, p.Name})
		}
	case "pile_taxa":
		for _, p := range d.Piles {
			for _, v := range p.TaxonIDs {
				res = append(res, []any{p.ID, v})
			}
		}
	case "pile_character_values":
		for _, p := range d.Piles {
			for _, v := range p.ValueIDs {
				res = append(res, []any{p.ID, v})
			}
		}
	}
	return res
}
