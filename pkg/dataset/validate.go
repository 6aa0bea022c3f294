package dataset

import (
	"fmt"
)

// Validate checks referential integrity of the dataset. All found problems
// are reported in one IntegrityError.
func (d *Dataset) Validate() error {
	var issues []string
	add := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	chars := make(map[int]struct{}, len(d.Characters))
	shortNames := make(map[string]int)
	values := make(map[int]int)
	for _, c := range d.Characters {
		if _, ok := chars[c.ID]; ok {
			add("duplicate character id %d", c.ID)
		}
		chars[c.ID] = struct{}{}

		if c.ShortName == "" {
			add("character %d has no short_name", c.ID)
		} else if id, ok := shortNames[c.ShortName]; ok {
			add("characters %d and %d share short_name %q",
				id, c.ID, c.ShortName)
		} else {
			shortNames[c.ShortName] = c.ID
		}

		seen := make(map[string]struct{})
		for _, v := range c.Values {
			if charID, ok := values[v.ID]; ok {
				add("character value %d belongs to characters %d and %d",
					v.ID, charID, c.ID)
			}
			values[v.ID] = c.ID
			if _, ok := seen[v.Value]; ok {
				add("character %q repeats value %q", c.ShortName, v.Value)
			}
			seen[v.Value] = struct{}{}
		}
	}

	taxa := make(map[int]struct{}, len(d.Taxa))
	for _, t := range d.Taxa {
		if _, ok := taxa[t.ID]; ok {
			add("duplicate taxon id %d", t.ID)
		}
		taxa[t.ID] = struct{}{}
		for _, id := range t.ValueIDs {
			if _, ok := values[id]; !ok {
				add("taxon %d refers to unknown character value %d", t.ID, id)
			}
		}
	}

	piles := make(map[int]struct{}, len(d.Piles))
	slugs := make(map[string]struct{}, len(d.Piles))
	for _, p := range d.Piles {
		if _, ok := piles[p.ID]; ok {
			add("duplicate pile id %d", p.ID)
		}
		piles[p.ID] = struct{}{}
		if p.Slug == "" {
			add("pile %d has no slug", p.ID)
		} else if _, ok := slugs[p.Slug]; ok {
			add("duplicate pile slug %q", p.Slug)
		}
		slugs[p.Slug] = struct{}{}

		for _, id := range p.TaxonIDs {
			if _, ok := taxa[id]; !ok {
				add("pile %q refers to unknown taxon %d", p.Slug, id)
			}
		}
		for _, id := range p.ValueIDs {
			if _, ok := values[id]; !ok {
				add("pile %q refers to unknown character value %d", p.Slug, id)
			}
		}
	}

	if len(issues) > 0 {
		return IntegrityError(issues)
	}
	return nil
}
