package iopopulate

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/jackc/pgx/v5"
)

// table is content of one key table prepared for CopyFrom.
type table struct {
	name    string
	columns []string
	rows    [][]any
}

// replaceTables truncates key tables and copies the new rows in one
// transaction.
func (p *populator) replaceTables(
	ctx context.Context,
	tables []table,
	batchSize int,
) error {
	if batchSize <= 0 {
		batchSize = 10_000
	}

	tx, err := p.operator.Pool().Begin(ctx)
	if err != nil {
		return TransactionError(err)
	}
	defer tx.Rollback(ctx)

	names := make([]string, len(tables))
	var total int
	for i, v := range tables {
		names[i] = v.name
		total += len(v.rows)
	}

	q := fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(names, ", "))
	if _, err = tx.Exec(ctx, q); err != nil {
		return TruncateError(err)
	}

	bar := pb.Full.Start(total)
	bar.Set("prefix", "Importing key data: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, t := range tables {
		for chunk := range slices.Chunk(t.rows, batchSize) {
			_, err = tx.CopyFrom(
				ctx,
				pgx.Identifier{t.name},
				t.columns,
				pgx.CopyFromRows(chunk),
			)
			if err != nil {
				return InsertError(t.name, err)
			}
			bar.Add(len(chunk))
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return TransactionError(err)
	}
	return nil
}

// uniqueRows removes repeated rows of join tables, keeping the first
// occurrence. Join tables have composite primary keys, so repeated
// assignments in a dataset would break the import.
func uniqueRows(rows [][]any) [][]any {
	seen := make(map[string]struct{}, len(rows))
	res := rows[:0:0]
	for _, v := range rows {
		k := fmt.Sprint(v...)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, v)
	}
	return res
}
