package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	enginesync "github.com/strata-app/strata/sync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one load-and-push cycle against the remote store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			// withEngine already performed the identity load pass and
			// will flush on the way out; just report where we stand.
			if err := eng.LastError(); err != nil {
				fmt.Printf("status: %s (%v)\n", eng.Status(), err)
				return nil
			}
			fmt.Printf("status: %s\n", eng.Status())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
