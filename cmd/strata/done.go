package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-app/strata/mutate"
	enginesync "github.com/strata-app/strata/sync"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task between Done and In Progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			next := mutate.ToggleTaskStatus(currentDoc(eng), args[0])
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("toggled task %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
