package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-app/strata/formats"
	enginesync "github.com/strata-app/strata/sync"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the document as a Markdown outline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			out, err := formats.Export(currentDoc(eng), "markdown")
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
