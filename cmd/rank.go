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
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkey/internal/iodataset"
	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/internal/iostore"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/key"
	"github.com/gnames/gnkey/pkg/rank"
	"github.com/spf13/cobra"
)

// rankOutput is the result of one identification step.
type rankOutput struct {
	Pile       key.Pile          `json:"pile"`
	Species    []int             `json:"species"`
	Characters []characterOutput `json:"characters"`
}

type characterOutput struct {
	rank.CharacterScore
	Name string `json:"name"`
}

// getRankCmd returns the rank command.
func getRankCmd() *cobra.Command {
	var (
		pileSlug string
		species  []int
		answers  []string
		input    string
		limit    int
		format   string
	)

	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank characters of a pile for the next question",
		Long: `Rank prints characters of a pile ordered from the best next
question to the worst.

Species are all taxa of the pile, or the ones given by --species.
Each --answer removes species known to have a different value of
the answered character. Species without data for that character are
kept. Answered characters are not ranked again.

Key data are read from PostgreSQL, or from a dataset file given
by --input.

Examples:
  gnkey rank -p woody-angiosperms
  gnkey rank -p woody-angiosperms -a leaf_lobes=5 -a bark_color=gray
  gnkey rank -p woody-angiosperms -s 101,102,103 --format json
  gnkey rank -p woody-angiosperms -i key.yaml -l 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rankOpts []config.Option
			if cmd.Flags().Changed("limit") {
				rankOpts = append(rankOpts, config.OptRankLimit(limit))
			}
			if cmd.Flags().Changed("format") {
				rankOpts = append(rankOpts, config.OptRankFormat(format))
			}
			cfg.Update(rankOpts)

			err := runRank(cmd.OutOrStdout(), pileSlug, species, answers, input)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	rankCmd.Flags().StringVarP(&pileSlug, "pile", "p", "",
		"slug of the pile")
	rankCmd.Flags().IntSliceVarP(&species, "species", "s", nil,
		"IDs of species still considered (default: all taxa of the pile)")
	rankCmd.Flags().StringArrayVarP(&answers, "answer", "a", nil,
		"answered question in the form 'short_name=value', repeatable")
	rankCmd.Flags().StringVarP(&input, "input", "i", "",
		"rank over a dataset file instead of the database")
	rankCmd.Flags().IntVarP(&limit, "limit", "l", 10,
		"maximal number of characters to show")
	rankCmd.Flags().StringVar(&format, "format", "text",
		"output format: 'text' or 'json'")
	_ = rankCmd.MarkFlagRequired("pile")

	return rankCmd
}

func runRank(
	w io.Writer,
	pileSlug string,
	species []int,
	answerStrs []string,
	input string,
) error {
	ctx := context.Background()

	answers, err := parseAnswers(answerStrs)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, input)
	if err != nil {
		return err
	}
	defer closeStore()

	res, err := rankStep(ctx, store, pileSlug, species, answers, cfg.Rank.Limit)
	if err != nil {
		return err
	}

	if len(res.Species) == 0 {
		gn.Warn("No species of <em>%s</em> match the answers", pileSlug)
		return nil
	}

	return writeRank(w, res, cfg.Rank.Format)
}

// openStore returns a key store over a dataset file, or over PostgreSQL
// if path is empty.
func openStore(
	ctx context.Context,
	path string,
) (key.Store, func(), error) {
	if path != "" {
		d, err := iodataset.Load(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Ranking over dataset", "path", path)
		return dataset.NewStore(d), func() {}, nil
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, nil, err
	}
	return iostore.New(op), func() { op.Close() }, nil
}

// rankStep runs one identification step: narrows species by answers and
// ranks characters that are not answered yet.
func rankStep(
	ctx context.Context,
	store key.Store,
	pileSlug string,
	species []int,
	answers []key.Answer,
	limit int,
) (rankOutput, error) {
	var res rankOutput

	pile, err := store.PileBySlug(ctx, pileSlug)
	if err != nil {
		return res, err
	}
	res.Pile = pile

	if len(species) == 0 {
		if species, err = store.PileTaxa(ctx, pile.ID); err != nil {
			return res, err
		}
	}

	answerIDs, err := key.ResolveAnswers(ctx, store, answers)
	if err != nil {
		return res, err
	}

	ranker := rank.New(store)
	if res.Species, err = ranker.Narrow(ctx, species, answerIDs); err != nil {
		return res, err
	}
	res.Characters = []characterOutput{}
	if len(res.Species) == 0 {
		return res, nil
	}

	scores, err := ranker.BestCharacters(ctx, pile.ID, res.Species)
	if err != nil {
		return res, err
	}

	answered, err := ranker.AnsweredCharacters(ctx, answerIDs)
	if err != nil {
		return res, err
	}
	scores = rank.WithoutCharacters(scores, answered)
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}

	charIDs := make([]int, len(scores))
	for i, v := range scores {
		charIDs[i] = v.CharacterID
	}
	names, err := store.CharacterNames(ctx, charIDs)
	if err != nil {
		return res, err
	}

	for _, v := range scores {
		res.Characters = append(res.Characters,
			characterOutput{CharacterScore: v, Name: names[v.CharacterID]})
	}

	slog.Info("Characters ranked",
		"pile", pile.Slug,
		"species", len(res.Species),
		"answers", len(answerIDs),
		"characters", len(res.Characters),
	)
	return res, nil
}

func writeRank(w io.Writer, res rankOutput, format string) error {
	if format == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		bs, err := enc.Encode(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bs))
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Pile: %s (%s), species: %d\n",
		res.Pile.Name, res.Pile.Slug, len(res.Species))
	if len(res.Characters) == 0 {
		sb.WriteString("No characters left to ask\n")
	}
	for i, v := range res.Characters {
		fmt.Fprintf(&sb, "%3d. %-8.4f %6d  %s\n",
			i+1, v.Score, v.CharacterID, v.Name)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
