package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models in dependency order. Referenced
// tables come before tables that refer to them, which is also the order
// of inserts.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		&Character{},
		&CharacterValue{},
		&Taxon{},
		&TaxonCharacterValue{},
		&Pile{},
		&PileTaxon{},
		&PileCharacterValue{},
	}
}

// TableNames returns table names in the order of AllModels.
func TableNames() []string {
	models := AllModels()
	res := make([]string, len(models))
	for i, v := range models {
		res[i] = v.TableName()
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	models := AllModels()
	dst := make([]any, len(models))
	for i, v := range models {
		dst[i] = v
	}
	return db.AutoMigrate(dst...)
}
