package iopopulate

import (
	"context"
	"log/slog"

	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/parserpool"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

// taxonColumns extend archive columns of taxa with fields derived from
// scientific names.
var taxonColumns = []string{"id", "scientific_name", "canonical", "name_id"}

// taxaRows parses scientific names concurrently and creates rows for the
// taxa table. Names that cannot be parsed get NULL canonical and name_id.
func taxaRows(
	ctx context.Context,
	d *dataset.Dataset,
	jobsNum int,
) ([][]any, error) {
	pool := parserpool.NewPool(jobsNum)
	defer pool.Close()

	res := make([][]any, len(d.Taxa))
	idxCh := make(chan int)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(idxCh)
		for i := range d.Taxa {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case idxCh <- i:
			}
		}
		return nil
	})

	workers := jobsNum
	if workers <= 0 {
		workers = 1
	}
	for range workers {
		g.Go(func() error {
			for i := range idxCh {
				t := d.Taxa[i]
				var canonical, nameID any
				if c, ok := pool.Canonical(t.ScientificName); ok {
					canonical = c
					nameID = gnuuid.New(c).String()
				} else {
					slog.Warn("Cannot parse scientific name",
						"taxon_id", t.ID, "name", t.ScientificName)
				}
				// each worker writes only its own index
				res[i] = []any{t.ID, t.ScientificName, canonical, nameID}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, ParseError(err)
	}
	return res, nil
}
