package iodataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/schema"
	_ "modernc.org/sqlite"
)

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// loadSQLite reads archive tables in rowid order, which is the order
// records were written.
func loadSQLite(ctx context.Context, path string) (*dataset.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ReadError(path, err)
	}

	db, err := openSQLite(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer db.Close()

	var res dataset.Dataset
	steps := []func(context.Context, *sql.DB, *dataset.Dataset) error{
		readCharacters,
		readTaxa,
		readPiles,
	}
	for _, step := range steps {
		if err = step(ctx, db, &res); err != nil {
			return nil, ReadError(path, err)
		}
	}
	return &res, nil
}

func readCharacters(ctx context.Context, db *sql.DB, d *dataset.Dataset) error {
	q := "SELECT id, short_name, name FROM characters ORDER BY rowid"
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	idx := make(map[int]int)
	for rows.Next() {
		var c dataset.Character
		var name sql.NullString
		if err = rows.Scan(&c.ID, &c.ShortName, &name); err != nil {
			return err
		}
		c.Name = name.String
		idx[c.ID] = len(d.Characters)
		d.Characters = append(d.Characters, c)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	q = "SELECT id, character_id, value FROM character_values ORDER BY rowid"
	rows, err = db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var cv dataset.CharacterValue
		var charID int
		if err = rows.Scan(&cv.ID, &charID, &cv.Value); err != nil {
			return err
		}
		i, ok := idx[charID]
		if !ok {
			slog.Warn("Skipping character value of unknown character",
				"value_id", cv.ID, "character_id", charID)
			continue
		}
		d.Characters[i].Values = append(d.Characters[i].Values, cv)
	}
	return rows.Err()
}

func readTaxa(ctx context.Context, db *sql.DB, d *dataset.Dataset) error {
	q := "SELECT id, scientific_name FROM taxa ORDER BY rowid"
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	idx := make(map[int]int)
	for rows.Next() {
		var t dataset.Taxon
		if err = rows.Scan(&t.ID, &t.ScientificName); err != nil {
			return err
		}
		idx[t.ID] = len(d.Taxa)
		d.Taxa = append(d.Taxa, t)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	q = `SELECT taxon_id, character_value_id
  FROM taxon_character_values ORDER BY rowid`
	return readPairs(ctx, db, q, func(taxonID, valueID int) {
		i, ok := idx[taxonID]
		if !ok {
			slog.Warn("Skipping character value of unknown taxon",
				"taxon_id", taxonID, "value_id", valueID)
			return
		}
		d.Taxa[i].ValueIDs = append(d.Taxa[i].ValueIDs, valueID)
	})
}

func readPiles(ctx context.Context, db *sql.DB, d *dataset.Dataset) error {
	q := "SELECT id, slug, name FROM piles ORDER BY rowid"
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	idx := make(map[int]int)
	for rows.Next() {
		var p dataset.Pile
		var name sql.NullString
		if err = rows.Scan(&p.ID, &p.Slug, &name); err != nil {
			return err
		}
		p.Name = name.String
		idx[p.ID] = len(d.Piles)
		d.Piles = append(d.Piles, p)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	pile := func(pileID int) (*dataset.Pile, bool) {
		i, ok := idx[pileID]
		if !ok {
			slog.Warn("Skipping membership of unknown pile", "pile_id", pileID)
			return nil, false
		}
		return &d.Piles[i], true
	}

	q = "SELECT pile_id, taxon_id FROM pile_taxa ORDER BY rowid"
	err = readPairs(ctx, db, q, func(pileID, taxonID int) {
		if p, ok := pile(pileID); ok {
			p.TaxonIDs = append(p.TaxonIDs, taxonID)
		}
	})
	if err != nil {
		return err
	}

	q = `SELECT pile_id, character_value_id
  FROM pile_character_values ORDER BY rowid`
	return readPairs(ctx, db, q, func(pileID, valueID int) {
		if p, ok := pile(pileID); ok {
			p.ValueIDs = append(p.ValueIDs, valueID)
		}
	})
}

func readPairs(
	ctx context.Context,
	db *sql.DB,
	q string,
	fn func(int, int),
) error {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	var a, b int
	for rows.Next() {
		if err = rows.Scan(&a, &b); err != nil {
			return err
		}
		fn(a, b)
	}
	return rows.Err()
}

// writeSQLite creates a new archive with key tables and copies the
// dataset into it in one transaction.
func writeSQLite(ctx context.Context, d *dataset.Dataset, path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return WriteError(path, err)
	}

	db, err := openSQLite(path)
	if err != nil {
		return WriteError(path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return WriteError(path, err)
	}
	defer tx.Rollback()

	for _, m := range schema.AllModels() {
		stmts := append([]string{m.TableDDL()}, m.IndexDDL()...)
		for _, v := range stmts {
			if _, err = tx.ExecContext(ctx, v); err != nil {
				return WriteError(path, err)
			}
		}
	}

	for _, m := range schema.AllModels() {
		rows := Rows(d, m.TableName())
		if err = insertRows(ctx, tx, m, rows); err != nil {
			return WriteError(path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Dataset archive created", "path", path)
	return nil
}

func insertRows(
	ctx context.Context,
	tx *sql.Tx,
	m schema.DDLGenerator,
	rows [][]any,
) error {
	if len(rows) == 0 {
		return nil
	}

	cols := schema.Columns(m)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	q := fmt.Sprintf("INSERT OR IGNORE INTO %s (%s) VALUES (%s)",
		m.TableName(), strings.Join(cols, ", "), marks)

	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, v := range rows {
		if _, err = stmt.ExecContext(ctx, v...); err != nil {
			return fmt.Errorf("%s: %w", m.TableName(), err)
		}
	}
	return nil
}
