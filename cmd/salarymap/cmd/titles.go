package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarymap/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarymap/internal/session"
)

// List the distinct job titles, optionally fuzzy matched against a query.
func titlesCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "titles [query]",
		Short: "List the job titles in the dataset.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			a.cfg.Geo = ""
			if err := a.load(context.Background()); err != nil {
				return err
			}

			titles := aggregate.Summarize(a.records).DistinctJobTitles
			if query := strings.Join(args, " "); query != "" {
				titles = session.RankTitles(query, titles, limit)
			} else if limit > 0 && len(titles) > limit {
				titles = titles[:limit]
			}
			for _, t := range titles {
				fmt.Fprintln(a.out, t)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many titles (0 = all)")
	return cmd
}
