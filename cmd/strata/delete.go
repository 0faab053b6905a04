package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-app/strata/mutate"
	enginesync "github.com/strata-app/strata/sync"
	"github.com/strata-app/strata/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <kind> <id>",
	Short: "Delete a group, area, project, phase or task by ID",
	Long: "Delete an entity by ID. Deleting a group leaves its areas in place,\n" +
		"ungrouped. Deleting a task searches every container it could occupy.",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"group", "area", "project", "phase", "task"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id := args[0], args[1]
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			doc := currentDoc(eng)
			var next types.Document
			switch kind {
			case "group":
				next = mutate.DeleteGroup(doc, id)
			case "area":
				next = mutate.DeleteArea(doc, id)
			case "project":
				next = mutate.DeleteProject(doc, id)
			case "phase":
				next = mutate.DeletePhase(doc, id)
			case "task":
				next = mutate.DeleteTask(doc, id)
			default:
				return fmt.Errorf("unknown kind %q", kind)
			}
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("deleted %s %s\n", kind, id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
