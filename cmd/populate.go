/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/internal/iopopulate"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	var datasetPath string

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate key tables from a dataset",
		Long: `Import key reference data from a YAML file or a SQLite archive.

This command:
  1. Reads the dataset (format is detected by file extension)
  2. Validates references between characters, values, taxa and piles
  3. Parses scientific names of taxa with GNparser (botanical code)
  4. Replaces content of all key tables in one transaction
  5. Reports progress and statistics

If validation or import fails, previous data stay intact.

Examples:
  gnkey populate --input key.yaml
  gnkey populate -i key.sqlite`,
		Aliases: []string{"import"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd, datasetPath)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().StringVarP(
		&datasetPath, "input", "i", "",
		"dataset file (.yaml, .yml, .sqlite, .db)",
	)
	_ = populateCmd.MarkFlagRequired("input")

	return populateCmd
}

func runPopulate(cmd *cobra.Command, datasetPath string) error {
	ctx := context.Background()

	cfg.Update([]config.Option{config.OptPopulateDatasetPath(datasetPath)})

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if !hasTables {
		return iodb.EmptyDatabaseError(cfg.Database.Host, cfg.Database.Database)
	}

	populator := iopopulate.NewPopulator(op)

	gn.Info("Importing key data from <em>%s</em>...", cfg.Populate.DatasetPath)
	if err := populator.Populate(ctx, cfg); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>gnkey rank -p pile-slug</em>' to get the best first questions
`)

	return nil
}
