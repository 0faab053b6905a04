package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-app/strata/mutate"
	enginesync "github.com/strata-app/strata/sync"
)

var (
	moveTaskArea    string
	moveTaskProject string
	moveTaskPhase   string
	moveProjectArea string
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move tasks and projects",
}

var moveTaskCmd = &cobra.Command{
	Use:   "task <task-id>",
	Short: "Move a task to another container (inbox by default)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := taskLocationFromFlags(moveTaskArea, moveTaskProject, moveTaskPhase)
		if err != nil {
			return err
		}
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			next, err := mutate.MoveTask(currentDoc(eng), args[0], loc)
			if err != nil {
				return err
			}
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("moved task %s to %s\n", args[0], loc)
			return nil
		})
	},
}

var moveProjectCmd = &cobra.Command{
	Use:   "project <project-id>",
	Short: "Move a project to another area",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if moveProjectArea == "" {
			return fmt.Errorf("--area is required")
		}
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			next, err := mutate.MoveProject(currentDoc(eng), args[0], moveProjectArea)
			if err != nil {
				return err
			}
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("moved project %s to area %s\n", args[0], moveProjectArea)
			return nil
		})
	},
}

func init() {
	moveTaskCmd.Flags().StringVar(&moveTaskArea, "area", "", "target area ID")
	moveTaskCmd.Flags().StringVar(&moveTaskProject, "project", "", "target project ID")
	moveTaskCmd.Flags().StringVar(&moveTaskPhase, "phase", "", "target phase ID")
	moveProjectCmd.Flags().StringVar(&moveProjectArea, "area", "", "target area ID")

	moveCmd.AddCommand(moveTaskCmd)
	moveCmd.AddCommand(moveProjectCmd)
	rootCmd.AddCommand(moveCmd)
}
