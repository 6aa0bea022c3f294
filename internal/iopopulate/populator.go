// Package iopopulate implements lifecycle.Populator. It imports a key
// dataset into PostgreSQL, replacing previous content of key tables.
package iopopulate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkey/internal/iodataset"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/db"
	"github.com/gnames/gnkey/pkg/lifecycle"
	"github.com/gnames/gnkey/pkg/schema"
)

// populator implements the lifecycle.Populator interface.
type populator struct {
	operator db.Operator
}

// NewPopulator creates a new Populator.
func NewPopulator(op db.Operator) lifecycle.Populator {
	return &populator{operator: op}
}

// Populate loads, validates and imports a dataset. All key tables are
// truncated and filled in one transaction, so a failed import leaves the
// previous data intact.
func (p *populator) Populate(
	ctx context.Context,
	cfg *config.Config,
) error {
	if p.operator.Pool() == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	path := cfg.Populate.DatasetPath
	slog.Info("Starting database population", "dataset", path)

	d, err := iodataset.Load(ctx, path)
	if err != nil {
		return err
	}

	if err = d.Validate(); err != nil {
		return err
	}

	taxa, err := taxaRows(ctx, d, cfg.JobsNumber)
	if err != nil {
		return err
	}

	tables := make([]table, 0, len(schema.AllModels()))
	for _, m := range schema.AllModels() {
		t := table{name: m.TableName()}
		switch t.name {
		case "taxa":
			t.columns = taxonColumns
			t.rows = taxa
		default:
			t.columns = schema.Columns(m)
			t.rows = uniqueRows(iodataset.Rows(d, t.name))
		}
		tables = append(tables, t)
	}

	if err = p.replaceTables(ctx, tables, cfg.Database.BatchSize); err != nil {
		return err
	}

	var total int
	for _, v := range tables {
		total += len(v.rows)
		slog.Info("Imported table",
			"table", v.name, "rows", humanize.Comma(int64(len(v.rows))))
	}

	duration := gnfmt.TimeString(time.Since(startTime).Seconds())
	slog.Info("Population complete",
		"rows", total,
		"duration", duration,
	)
	gn.Info(`Population complete
Imported <em>%s</em> taxa, <em>%s</em> rows total.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(len(taxa))),
		humanize.Comma(int64(total)),
		duration,
	)
	return nil
}
