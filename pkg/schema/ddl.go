package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
// Fields without ddl tag are not part of dataset archives.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns names of columns that have DDL definitions, in the
// order of struct fields.
func Columns(model DDLGenerator) []string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("db") != "" && field.Tag.Get("ddl") != "" {
			res = append(res, field.Tag.Get("db"))
		}
	}
	return res
}

func (t Taxon) TableDDL() string {
	return generateDDL(t, t.TableName())
}

func (t Taxon) IndexDDL() []string {
	return []string{}
}

func (t Taxon) TableName() string {
	return "taxa"
}

func (c Character) TableDDL() string {
	return generateDDL(c, c.TableName())
}

func (c Character) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_characters_short_name ON characters(short_name);",
	}
}

func (c Character) TableName() string {
	return "characters"
}

func (cv CharacterValue) TableDDL() string {
	return generateDDL(cv, cv.TableName())
}

func (cv CharacterValue) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_character_values_character_id ON character_values(character_id);",
	}
}

func (cv CharacterValue) TableName() string {
	return "character_values"
}

func (tcv TaxonCharacterValue) TableDDL() string {
	return generateDDL(tcv, tcv.TableName())
}

func (tcv TaxonCharacterValue) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_taxon_character_values_pk " +
			"ON taxon_character_values(taxon_id, character_value_id);",
	}
}

func (tcv TaxonCharacterValue) TableName() string {
	return "taxon_character_values"
}

func (p Pile) TableDDL() string {
	return generateDDL(p, p.TableName())
}

func (p Pile) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_piles_slug ON piles(slug);",
	}
}

func (p Pile) TableName() string {
	return "piles"
}

func (pt PileTaxon) TableDDL() string {
	return generateDDL(pt, pt.TableName())
}

func (pt PileTaxon) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_pile_taxa_pk ON pile_taxa(pile_id, taxon_id);",
	}
}

func (pt PileTaxon) TableName() string {
	return "pile_taxa"
}

func (pcv PileCharacterValue) TableDDL() string {
	return generateDDL(pcv, pcv.TableName())
}

func (pcv PileCharacterValue) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_pile_character_values_pk " +
			"ON pile_character_values(pile_id, character_value_id);",
	}
}

func (pcv PileCharacterValue) TableName() string {
	return "pile_character_values"
}
