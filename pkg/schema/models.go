// Package schema provides database models of identification key data.
// The same models describe PostgreSQL tables (GORM AutoMigrate) and
// tables of SQLite dataset archives (generated DDL).
package schema

import (
	"github.com/google/uuid"
)

// DDLGenerator defines how Go models generate portable SQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Taxon is a species that can be identified with the key.
type Taxon struct {
	// ID is assigned by curators and stays stable between imports.
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`

	// ScientificName is the full name with authorship.
	ScientificName string `db:"scientific_name" ddl:"TEXT NOT NULL" gorm:"type:varchar(255);not null"`

	// Canonical is the simple canonical form produced by GNparser.
	// It is empty if the name could not be parsed.
	Canonical string `db:"canonical" gorm:"type:varchar(255);index"`

	// NameID is UUID v5 of the canonical form, compatible with
	// GNverifier identifiers.
	NameID uuid.NullUUID `db:"name_id" gorm:"type:uuid;index"`
}

// Character is an observable trait type.
type Character struct {
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`

	// ShortName is unique machine-friendly name, e.g. leaf_shape.
	ShortName string `db:"short_name" ddl:"TEXT NOT NULL" gorm:"type:varchar(100);not null;uniqueIndex"`

	// Name is the human-readable name.
	Name string `db:"name" ddl:"TEXT" gorm:"type:varchar(255)"`
}

// CharacterValue is one possible state of a Character.
type CharacterValue struct {
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`

	// CharacterID is the owning character.
	CharacterID int `db:"character_id" ddl:"INTEGER NOT NULL" gorm:"not null;index"`

	Value string `db:"value" ddl:"TEXT NOT NULL" gorm:"type:varchar(255);not null"`
}

// TaxonCharacterValue records that a taxon has a character value.
type TaxonCharacterValue struct {
	TaxonID          int `db:"taxon_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	CharacterValueID int `db:"character_value_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false;index"`
}

// Pile is a curated group of taxa.
type Pile struct {
	ID   int    `db:"id" ddl:"INTEGER PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`
	Slug string `db:"slug" ddl:"TEXT NOT NULL" gorm:"type:varchar(100);not null;uniqueIndex"`
	Name string `db:"name" ddl:"TEXT" gorm:"type:varchar(255)"`
}

// PileTaxon is a membership of a taxon in a pile.
type PileTaxon struct {
	PileID  int `db:"pile_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	TaxonID int `db:"taxon_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
}

// PileCharacterValue makes a character value usable in a pile.
type PileCharacterValue struct {
	PileID           int `db:"pile_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	CharacterValueID int `db:"character_value_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`
}
