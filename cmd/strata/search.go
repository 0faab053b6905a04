package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-app/strata/search"
	enginesync "github.com/strata-app/strata/sync"
	"github.com/strata-app/strata/types"
)

var (
	searchExact bool
	searchCase  bool
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find tasks by title, description, label or context tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			opts := search.Options{
				Query:         args[0],
				ExactMatch:    searchExact,
				CaseSensitive: searchCase,
			}
			if searchLimit > 0 {
				opts.MaxResults = &searchLimit
			}

			results := search.Tasks(currentDoc(eng), opts)
			if len(results) == 0 {
				fmt.Println("no matching tasks")
				return nil
			}
			for _, r := range results {
				mark := " "
				if r.Task.Status == types.StatusDone {
					mark = "x"
				}
				fmt.Printf("[%s] %s  (%s)  %s\n", mark, r.Task.Title, r.Path, r.Task.ID)
			}
			return nil
		})
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchExact, "exact", false, "require the whole field to match")
	searchCmd.Flags().BoolVar(&searchCase, "case-sensitive", false, "match case exactly")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of results (0 = no limit)")
	rootCmd.AddCommand(searchCmd)
}
