package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-app/strata/internal/validation"
	enginesync "github.com/strata-app/strata/sync"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the document's structural invariants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			if err := validation.ValidateDocument(currentDoc(eng)); err != nil {
				return fmt.Errorf("document is inconsistent: %w", err)
			}
			fmt.Println("document is consistent")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
