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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iodataset"
	"github.com/gnames/gnkey/pkg/schema"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var input, output string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Convert a dataset between YAML and SQLite archive",
		Long: `Export reads a dataset, validates it and writes it in the format
given by the extension of the output file. Existing output is replaced.

SQLite archives contain the same tables as the PostgreSQL database,
without derived name fields.

Examples:
  gnkey export -i key.yaml -o key.sqlite
  gnkey export -i key.sqlite -o key.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(input, output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(&input, "input", "i", "",
		"dataset to read")
	exportCmd.Flags().StringVarP(&output, "output", "o", "",
		"file to write (.yaml, .yml, .sqlite, .db)")
	_ = exportCmd.MarkFlagRequired("input")
	_ = exportCmd.MarkFlagRequired("output")

	return exportCmd
}

func runExport(input, output string) error {
	ctx := context.Background()

	if iodataset.FormatOf(output) == iodataset.UnknownFormat {
		return iodataset.FormatError(output)
	}

	d, err := iodataset.Load(ctx, input)
	if err != nil {
		return err
	}

	if err = d.Validate(); err != nil {
		return err
	}

	if err = iodataset.Write(ctx, d, output); err != nil {
		return err
	}

	stats := d.Stats()
	for _, v := range schema.TableNames() {
		gn.Info("%-24s %8s", v, humanize.Comma(int64(stats[v])))
	}
	gn.Info("Dataset written to <em>%s</em> (%s)",
		output, iodataset.FormatOf(output))
	return nil
}
